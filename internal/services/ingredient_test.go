package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/recipe-api/internal/models"
	"github.com/mkarpushin/recipe-api/internal/services"
)

func TestIngredientService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockIngredientReader(ctrl)
	mockWriter := services.NewMockIngredientWriter(ctrl)

	svc := services.NewIngredientService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("returns the user's ingredients", func(t *testing.T) {
		ingredients := []models.IngredientDB{
			{IngredientID: 1, UserID: userID, Name: "flour"},
			{IngredientID: 2, UserID: userID, Name: "salt"},
		}
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return(ingredients, nil)

		got, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, ingredients, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background(), userID)
		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})
}

func TestIngredientService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockIngredientReader(ctrl)
	mockWriter := services.NewMockIngredientWriter(ctrl)

	svc := services.NewIngredientService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name           string
		ingredientName string
		savedName      string
		writerErr      error
		wantErr        error
	}{
		{
			name:           "successful creation",
			ingredientName: "salt",
			savedName:      "salt",
		},
		{
			name:           "name is trimmed",
			ingredientName: " olive oil ",
			savedName:      "olive oil",
		},
		{
			name:           "empty name",
			ingredientName: "",
			wantErr:        services.ErrIngredientNameRequired,
		},
		{
			name:           "writer error",
			ingredientName: "salt",
			savedName:      "salt",
			writerErr:      errors.New("save error"),
			wantErr:        errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.savedName != "" {
				call := mockWriter.EXPECT().
					Save(gomock.Any(), userID, tt.savedName)
				if tt.writerErr != nil {
					call.Return(nil, tt.writerErr)
				} else {
					call.Return(&models.IngredientDB{IngredientID: 1, UserID: userID, Name: tt.savedName}, nil)
				}
			}

			ingredient, err := svc.Create(context.Background(), userID, tt.ingredientName)
			if tt.wantErr != nil {
				assert.Nil(t, ingredient)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.savedName, ingredient.Name)
			}
		})
	}
}
