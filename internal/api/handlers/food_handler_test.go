package handlers

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodService struct {
	addErr    error
	updateErr error
	noteErr   error
	getErr    error
	listErr   error

	notes []domain.NoteResponse
	items []domain.FoodItemResponse
}

func (s *fakeFoodService) AddFoodItem(_ context.Context, req domain.AddFoodItemRequest) (domain.AddFoodItemResponse, error) {
	if s.addErr != nil {
		return domain.AddFoodItemResponse{}, s.addErr
	}
	return domain.AddFoodItemResponse{InsertedID: "3f1c8a52-0000-0000-0000-000000000000"}, nil
}

func (s *fakeFoodService) UpdateFoodItem(_ context.Context, id string, req domain.UpdateFoodItemRequest) error {
	return s.updateErr
}

func (s *fakeFoodService) DeleteFoodItem(_ context.Context, id string) (domain.DeleteFoodItemResponse, error) {
	return domain.DeleteFoodItemResponse{DeletedCount: 0}, nil
}

func (s *fakeFoodService) SearchFoodItems(_ context.Context, search, category string) ([]domain.FoodItemResponse, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *fakeFoodService) GetExpiringSoon(_ context.Context) ([]domain.FoodItemResponse, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *fakeFoodService) GetFoodItemsByUser(_ context.Context, email string) ([]domain.FoodItemResponse, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *fakeFoodService) GetFoodItemByID(_ context.Context, id string) (domain.FoodItemResponse, error) {
	if s.getErr != nil {
		return domain.FoodItemResponse{}, s.getErr
	}
	return domain.FoodItemResponse{ID: id, Title: "Apple"}, nil
}

func (s *fakeFoodService) AddNote(_ context.Context, foodID string, req domain.AddNoteRequest, authorEmail string) (domain.AddNoteResponse, error) {
	if s.noteErr != nil {
		return domain.AddNoteResponse{}, s.noteErr
	}
	return domain.AddNoteResponse{InsertedID: foodID}, nil
}

func (s *fakeFoodService) GetNotes(_ context.Context, foodID string) ([]domain.NoteResponse, error) {
	if s.noteErr != nil {
		return nil, s.noteErr
	}
	if s.notes == nil {
		return []domain.NoteResponse{}, nil
	}
	return s.notes, nil
}

func (s *fakeFoodService) UploadFoodImage(_ context.Context, foodID string, image *multipart.FileHeader, userEmail string) (domain.UploadFoodImageResponse, error) {
	return domain.UploadFoodImageResponse{}, nil
}

func (s *fakeFoodService) SendExpiryDigest(_ context.Context, email string) error {
	return nil
}

func stubAuth(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_email", email)
		return c.Next()
	}
}

func newFoodApp(svc *fakeFoodService) *fiber.App {
	utils.InitValidator()
	h := NewFoodHandler(svc, utils.Validate)

	app := fiber.New()
	auth := stubAuth("owner@example.com")
	app.Get("/foods/expiring-soon", h.GetExpiringSoon)
	app.Get("/foods", h.GetFoodItems)
	app.Get("/foods/:id", h.GetFoodItemDetails)
	app.Post("/foods", auth, h.AddFoodItem)
	app.Put("/foods/:id", auth, h.UpdateFoodItem)
	app.Delete("/foods/:id", auth, h.DeleteFoodItem)
	app.Post("/foods/:id/notes", auth, h.AddNote)
	app.Get("/foods/:id/notes", h.GetNotes)
	app.Get("/myfoods", auth, h.GetMyFoodItems)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestAddFoodItemHandler(t *testing.T) {
	t.Run("missing required fields fail validation", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		resp, _ := doJSON(t, app, http.MethodPost, "/foods", `{"title":"Apple"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-numeric quantity is rejected", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		body := `{"image":"i","title":"Apple","category":"fruit","quantity":"three","expiryDate":"2030-01-01","userEmail":"a@b.com"}`
		resp, _ := doJSON(t, app, http.MethodPost, "/foods", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("numeric string quantity is coerced", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		body := `{"image":"i","title":"Apple","category":"fruit","quantity":"3","expiryDate":"2030-01-01","userEmail":"a@b.com"}`
		resp, decoded := doJSON(t, app, http.MethodPost, "/foods", body)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		data := decoded["data"].(map[string]interface{})
		assert.NotEmpty(t, data["insertedId"])
	})

	t.Run("service validation error maps to 400", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{addErr: domain.ErrInvalidExpiryDate})
		body := `{"image":"i","title":"Apple","category":"fruit","quantity":1,"expiryDate":"soonish","userEmail":"a@b.com"}`
		resp, _ := doJSON(t, app, http.MethodPost, "/foods", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetFoodItemDetailsHandler(t *testing.T) {
	t.Run("missing item is 404", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{getErr: domain.ErrFoodItemNotFound})
		resp, _ := doJSON(t, app, http.MethodGet, "/foods/unknown", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("store error is a generic 500 without detail", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{getErr: errors.New("pq: connection refused")})
		resp, decoded := doJSON(t, app, http.MethodGet, "/foods/some-id", "")
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, domain.MessageFailedGetFoodItem, decoded["message"])
		assert.NotContains(t, decoded, "error")
	})
}

func TestUpdateFoodItemHandler(t *testing.T) {
	t.Run("missing item is 404", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{updateErr: domain.ErrFoodItemNotFound})
		resp, _ := doJSON(t, app, http.MethodPut, "/foods/unknown", `{"title":"New"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("partial update succeeds", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		resp, _ := doJSON(t, app, http.MethodPut, "/foods/some-id", `{"title":"New"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestDeleteFoodItemHandler(t *testing.T) {
	// delete never reports 404, it returns the store's deleted count
	app := newFoodApp(&fakeFoodService{})
	resp, decoded := doJSON(t, app, http.MethodDelete, "/foods/unknown", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["deletedCount"])
}

func TestAddNoteHandler(t *testing.T) {
	t.Run("missing text fails validation", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		resp, _ := doJSON(t, app, http.MethodPost, "/foods/some-id/notes", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-owner is 403", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{noteErr: domain.ErrNoteNotAllowed})
		resp, _ := doJSON(t, app, http.MethodPost, "/foods/some-id/notes", `{"text":"hi"}`)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing parent is 404", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{noteErr: domain.ErrFoodItemNotFound})
		resp, _ := doJSON(t, app, http.MethodPost, "/foods/some-id/notes", `{"text":"hi"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("owner note is created", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		resp, decoded := doJSON(t, app, http.MethodPost, "/foods/some-id/notes", `{"text":"hi"}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		data := decoded["data"].(map[string]interface{})
		assert.Equal(t, "some-id", data["insertedId"])
	})
}

func TestGetNotesHandler(t *testing.T) {
	// missing parent still answers 200 with an empty list
	app := newFoodApp(&fakeFoodService{})
	resp, decoded := doJSON(t, app, http.MethodGet, "/foods/unknown/notes", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, ok := decoded["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestGetMyFoodItemsHandler(t *testing.T) {
	t.Run("missing email query is 400", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{})
		resp, _ := doJSON(t, app, http.MethodGet, "/myfoods", "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("email query returns items", func(t *testing.T) {
		app := newFoodApp(&fakeFoodService{items: []domain.FoodItemResponse{{Title: "Mine"}}})
		resp, decoded := doJSON(t, app, http.MethodGet, "/myfoods?email=me@example.com", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := decoded["data"].([]interface{})
		assert.Len(t, data, 1)
	})
}
