package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/recipe-api/internal/middlewares"
	"github.com/mkarpushin/recipe-api/internal/models"
	"github.com/mkarpushin/recipe-api/internal/services"
)

func TestListIngredientsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com"}

	t.Run("returns the caller's ingredients", func(t *testing.T) {
		mockSvc := NewMockIngredientLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), user.UserID).
			Return([]models.IngredientDB{
				{IngredientID: 1, UserID: user.UserID, Name: "flour"},
				{IngredientID: 2, UserID: user.UserID, Name: "salt"},
			}, nil)

		handler := NewListIngredientsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/recipe/ingredients", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp []models.IngredientResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []models.IngredientResponse{
			{ID: 1, Name: "flour"},
			{ID: 2, Name: "salt"},
		}, resp)
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewListIngredientsHandler(NewMockIngredientLister(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/api/recipe/ingredients", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
	})
}

func TestCreateIngredientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com"}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockIngredientCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), user.UserID, "salt").
			Return(&models.IngredientDB{IngredientID: 1, UserID: user.UserID, Name: "salt"}, nil)

		handler := NewCreateIngredientHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/recipe/ingredients", bytes.NewBufferString(`{"name":"salt"}`))
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 201, rr.Code)

		var resp models.IngredientResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.IngredientResponse{ID: 1, Name: "salt"}, resp)
	})

	t.Run("empty name", func(t *testing.T) {
		mockSvc := NewMockIngredientCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), user.UserID, "").
			Return(nil, services.ErrIngredientNameRequired)

		handler := NewCreateIngredientHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/recipe/ingredients", bytes.NewBufferString(`{"name":""}`))
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 400, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewCreateIngredientHandler(NewMockIngredientCreator(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/recipe/ingredients", bytes.NewBufferString(`{"name":"salt"}`))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
	})
}
