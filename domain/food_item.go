package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessUpdateFoodItem = "food item updated successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessGetFoodItem    = "food item retrieved successfully"
	MessageSuccessAddNote        = "note added successfully"
	MessageSuccessGetNotes       = "notes retrieved successfully"
	MessageSuccessUploadImage    = "food image uploaded successfully"
	MessageSuccessSendDigest     = "expiry digest sent successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedGetFoodItem    = "failed to retrieve food item"
	MessageFailedAddNote        = "failed to add note"
	MessageFailedGetNotes       = "failed to retrieve notes"
	MessageFailedUploadImage    = "failed to upload food image"
	MessageFailedSendDigest     = "failed to send expiry digest"
	MessageFailedMissingEmail   = "user email is required"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidAddedDate  = errors.New("invalid added date")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrNoteNotAllowed    = errors.New("only the item owner may add a note")
	ErrNotItemOwner      = errors.New("only the item owner may modify this item")
	ErrMissingUserEmail  = errors.New("user email is required")
)

// Number accepts both JSON numbers and numeric strings, mirroring the loose
// quantity encoding clients send.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrInvalidQuantity
	}
	*n = Number(v)
	return nil
}

type (
	AddFoodItemRequest struct {
		Image       string `json:"image" validate:"required"`
		Title       string `json:"title" validate:"required"`
		Category    string `json:"category" validate:"required"`
		Quantity    Number `json:"quantity" validate:"required,gt=0"`
		ExpiryDate  string `json:"expiryDate" validate:"required"`
		Description string `json:"description"`
		UserEmail   string `json:"userEmail" validate:"required"`
	}

	AddFoodItemResponse struct {
		InsertedID string `json:"insertedId"`
	}

	UpdateFoodItemRequest struct {
		Image       *string `json:"image"`
		Title       *string `json:"title"`
		Category    *string `json:"category"`
		Quantity    *Number `json:"quantity"`
		ExpiryDate  *string `json:"expiryDate"`
		AddedDate   *string `json:"addedDate"`
		Description *string `json:"description"`
		UserEmail   *string `json:"userEmail"`
	}

	DeleteFoodItemResponse struct {
		DeletedCount int64 `json:"deletedCount"`
	}

	AddNoteRequest struct {
		Text string `json:"text" validate:"required"`
	}

	AddNoteResponse struct {
		InsertedID string `json:"insertedId"`
	}

	NoteResponse struct {
		Text        string    `json:"text"`
		AuthorEmail string    `json:"authorEmail"`
		CreatedAt   time.Time `json:"createdAt"`
		FoodID      string    `json:"foodId"`
	}

	FoodItemResponse struct {
		ID          string    `json:"id"`
		Image       string    `json:"image"`
		Title       string    `json:"title"`
		Category    string    `json:"category"`
		Quantity    float64   `json:"quantity"`
		ExpiryDate  time.Time `json:"expiryDate"`
		Description string    `json:"description"`
		AddedDate   time.Time `json:"addedDate"`
		UserEmail   string    `json:"userEmail"`
	}

	UploadFoodImageResponse struct {
		ImageURL string `json:"imageUrl"`
	}
)
