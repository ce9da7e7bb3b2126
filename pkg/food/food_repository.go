package food

import (
	"Food-Expiry-Tracker/entities"
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		SearchFoodItems(ctx context.Context, search, category string) ([]*entities.FoodItem, error)
		GetFoodItemsExpiringBefore(ctx context.Context, end time.Time) ([]*entities.FoodItem, error)
		GetFoodItemsByUserEmail(ctx context.Context, email string) ([]*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, id string, fields map[string]interface{}) error
		DeleteFoodItem(ctx context.Context, id string) (int64, error)
		AppendNote(ctx context.Context, id string, note entities.Note) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) SearchFoodItems(ctx context.Context, search, category string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	query := r.db.WithContext(ctx)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			r.db.Where("title ILIKE ?", pattern).Or("category ILIKE ?", pattern),
		)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsExpiringBefore(ctx context.Context, end time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	// No lower bound: already expired items are included on purpose.
	if err := r.db.WithContext(ctx).
		Where("expiry_date <= ?", end).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByUserEmail(ctx context.Context, email string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, id string, fields map[string]interface{}) error {
	tx := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *foodRepository) AppendNote(ctx context.Context, id string, note entities.Note) error {
	payload, err := json.Marshal(note)
	if err != nil {
		return err
	}

	// Single round trip, the store performs the array append.
	return r.db.WithContext(ctx).Exec(
		"UPDATE food_items SET notes = COALESCE(notes, '[]'::jsonb) || ?::jsonb WHERE id = ?",
		string(payload), id,
	).Error
}
