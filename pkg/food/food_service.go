package food

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/entities"
	"Food-Expiry-Tracker/internal/utils/mailing"
	"Food-Expiry-Tracker/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Items expiring within this many days (or already expired) count as
// "expiring soon". The window closes at end of day.
const expiringSoonWindowDays = 5

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.AddFoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error
		DeleteFoodItem(ctx context.Context, id string) (domain.DeleteFoodItemResponse, error)
		SearchFoodItems(ctx context.Context, search, category string) ([]domain.FoodItemResponse, error)
		GetExpiringSoon(ctx context.Context) ([]domain.FoodItemResponse, error)
		GetFoodItemsByUser(ctx context.Context, email string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		AddNote(ctx context.Context, foodID string, req domain.AddNoteRequest, authorEmail string) (domain.AddNoteResponse, error)
		GetNotes(ctx context.Context, foodID string) ([]domain.NoteResponse, error)
		UploadFoodImage(ctx context.Context, foodID string, image *multipart.FileHeader, userEmail string) (domain.UploadFoodImageResponse, error)
		SendExpiryDigest(ctx context.Context, email string) error
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func endOfExpiringWindow(now time.Time) time.Time {
	end := now.AddDate(0, 0, expiringSoonWindowDays)
	return time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, end.Location())
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:          item.ID.String(),
		Image:       item.Image,
		Title:       item.Title,
		Category:    item.Category,
		Quantity:    item.Quantity,
		ExpiryDate:  item.ExpiryDate,
		Description: item.Description,
		AddedDate:   item.AddedDate,
		UserEmail:   item.UserEmail,
	}
}

func toFoodItemResponses(items []*entities.FoodItem) []domain.FoodItemResponse {
	response := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toFoodItemResponse(item))
	}
	return response
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.AddFoodItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.AddFoodItemResponse{}, domain.ErrInvalidQuantity
	}

	expiryDate, ok := parseDate(req.ExpiryDate)
	if !ok {
		return domain.AddFoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		Image:       req.Image,
		Title:       req.Title,
		Category:    req.Category,
		Quantity:    float64(req.Quantity),
		ExpiryDate:  expiryDate,
		Description: req.Description,
		AddedDate:   time.Now(),
		UserEmail:   req.UserEmail,
		Notes:       entities.NoteList{},
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.AddFoodItemResponse{}, err
	}

	return domain.AddFoodItemResponse{InsertedID: foodItem.ID.String()}, nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrFoodItemNotFound
	}

	fields := map[string]interface{}{}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Quantity != nil {
		fields["quantity"] = float64(*req.Quantity)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.UserEmail != nil {
		fields["user_email"] = *req.UserEmail
	}
	if req.ExpiryDate != nil {
		expiryDate, ok := parseDate(*req.ExpiryDate)
		if !ok {
			return domain.ErrInvalidExpiryDate
		}
		fields["expiry_date"] = expiryDate
	}
	if req.AddedDate != nil {
		addedDate, ok := parseDate(*req.AddedDate)
		if !ok {
			return domain.ErrInvalidAddedDate
		}
		fields["added_date"] = addedDate
	}

	if len(fields) == 0 {
		_, err := s.GetFoodItemByID(ctx, id)
		return err
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	return nil
}

// DeleteFoodItem is idempotent: deleting a missing item reports a zero
// deleted count instead of an error.
func (s *foodService) DeleteFoodItem(ctx context.Context, id string) (domain.DeleteFoodItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.DeleteFoodItemResponse{DeletedCount: 0}, nil
	}

	count, err := s.foodRepository.DeleteFoodItem(ctx, id)
	if err != nil {
		return domain.DeleteFoodItemResponse{}, err
	}
	return domain.DeleteFoodItemResponse{DeletedCount: count}, nil
}

func (s *foodService) SearchFoodItems(ctx context.Context, search, category string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.SearchFoodItems(ctx, search, category)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetExpiringSoon(ctx context.Context) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsExpiringBefore(ctx, endOfExpiringWindow(time.Now()))
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetFoodItemsByUser(ctx context.Context, email string) ([]domain.FoodItemResponse, error) {
	if email == "" {
		return nil, domain.ErrMissingUserEmail
	}

	foodItems, err := s.foodRepository.GetFoodItemsByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	// Malformed identifiers surface as not found, the id format is an
	// internal detail of the store.
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) AddNote(ctx context.Context, foodID string, req domain.AddNoteRequest, authorEmail string) (domain.AddNoteResponse, error) {
	if _, err := uuid.Parse(foodID); err != nil {
		return domain.AddNoteResponse{}, domain.ErrFoodItemNotFound
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AddNoteResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.AddNoteResponse{}, err
	}

	if foodItem.UserEmail != authorEmail {
		return domain.AddNoteResponse{}, domain.ErrNoteNotAllowed
	}

	note := entities.Note{
		Text:        req.Text,
		AuthorEmail: authorEmail,
		CreatedAt:   time.Now(),
		FoodID:      foodID,
	}
	if err := s.foodRepository.AppendNote(ctx, foodID, note); err != nil {
		return domain.AddNoteResponse{}, err
	}

	return domain.AddNoteResponse{InsertedID: foodID}, nil
}

// GetNotes is lenient on purpose: a missing item yields an empty list, not
// an error.
func (s *foodService) GetNotes(ctx context.Context, foodID string) ([]domain.NoteResponse, error) {
	notes := make([]domain.NoteResponse, 0)

	if _, err := uuid.Parse(foodID); err != nil {
		return notes, nil
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notes, nil
		}
		return nil, err
	}

	for _, note := range foodItem.Notes {
		notes = append(notes, domain.NoteResponse{
			Text:        note.Text,
			AuthorEmail: note.AuthorEmail,
			CreatedAt:   note.CreatedAt,
			FoodID:      note.FoodID,
		})
	}
	return notes, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, foodID string, image *multipart.FileHeader, userEmail string) (domain.UploadFoodImageResponse, error) {
	foodItem, err := s.GetFoodItemByID(ctx, foodID)
	if err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	if foodItem.UserEmail != userEmail {
		return domain.UploadFoodImageResponse{}, domain.ErrNotItemOwner
	}

	fileName := fmt.Sprintf("food-item-%s", foodID)
	objectKey, err := s.s3.UploadFile(fileName, image, "food-items", storage.AllowImage...)
	if err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFoodItem(ctx, foodID, map[string]interface{}{"image": imageURL}); err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	// best effort cleanup of a previously uploaded image
	if oldKey := s.s3.GetObjectKeyFromLink(foodItem.Image); oldKey != "" && oldKey != objectKey {
		if err := s.s3.DeleteFile(oldKey); err != nil {
			log.Warnf("deleting replaced image %s: %v", oldKey, err)
		}
	}

	return domain.UploadFoodImageResponse{ImageURL: imageURL}, nil
}

func (s *foodService) SendExpiryDigest(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrMissingUserEmail
	}

	foodItems, err := s.foodRepository.GetFoodItemsByUserEmail(ctx, email)
	if err != nil {
		return err
	}

	end := endOfExpiringWindow(time.Now())
	var rows []string
	for _, item := range foodItems {
		if item.ExpiryDate.After(end) {
			continue
		}
		rows = append(rows, fmt.Sprintf(
			"<li>%s (%s) expires on %s</li>",
			item.Title, item.Category, item.ExpiryDate.Format("2006-01-02"),
		))
	}

	body := "<p>None of your food items expire within the next 5 days.</p>"
	if len(rows) > 0 {
		body = fmt.Sprintf(
			"<p>These food items expire within the next %d days:</p><ul>%s</ul>",
			expiringSoonWindowDays, strings.Join(rows, ""),
		)
	}

	return mailing.SendMail(email, "Food expiry digest", body)
}
