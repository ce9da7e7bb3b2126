package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Image       string    `json:"image"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Quantity    float64   `json:"quantity"`
	ExpiryDate  time.Time `json:"expiryDate"`
	Description string    `json:"description"`
	AddedDate   time.Time `json:"addedDate"`
	UserEmail   string    `gorm:"index" json:"userEmail"`
	Notes       NoteList  `gorm:"type:jsonb;default:'[]'" json:"notes,omitempty"`
}

type Note struct {
	Text        string    `json:"text"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	FoodID      string    `json:"foodId"`
}

// NoteList is stored as a jsonb array so appending a note stays a single
// atomic update on the food item row.
type NoteList []Note

func (n NoteList) Value() (driver.Value, error) {
	if n == nil {
		n = NoteList{}
	}
	return json.Marshal(n)
}

func (n *NoteList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = NoteList{}
		return nil
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	default:
		return errors.New("unsupported type for NoteList")
	}
}
