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

func TestRecipeService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockRecipeReader(ctrl)
	mockWriter := services.NewMockRecipeWriter(ctrl)
	mockTags := services.NewMockTagReader(ctrl)
	mockIngredients := services.NewMockIngredientReader(ctrl)

	svc := services.NewRecipeService(mockReader, mockWriter, mockTags, mockIngredients, nil)

	userID := uuid.New()

	t.Run("returns recipes with their id sets", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return([]models.RecipeDB{
				{RecipeID: 2, UserID: userID, Title: "Pelmeni"},
				{RecipeID: 1, UserID: userID, Title: "Borscht"},
			}, nil)
		mockReader.EXPECT().
			ListTagIDsByUser(gomock.Any(), userID).
			Return(map[int64][]int64{2: {1, 3}}, nil)
		mockReader.EXPECT().
			ListIngredientIDsByUser(gomock.Any(), userID).
			Return(map[int64][]int64{2: {5}, 1: {6, 7}}, nil)

		details, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Len(t, details, 2)
		assert.Equal(t, int64(2), details[0].Recipe.RecipeID)
		assert.Equal(t, []int64{1, 3}, details[0].TagIDs)
		assert.Equal(t, []int64{5}, details[0].IngredientIDs)
		assert.Nil(t, details[1].TagIDs)
		assert.Equal(t, []int64{6, 7}, details[1].IngredientIDs)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		details, err := svc.List(context.Background(), userID)
		assert.Nil(t, details)
		assert.EqualError(t, err, "db error")
	})

	t.Run("join load error", func(t *testing.T) {
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return([]models.RecipeDB{{RecipeID: 1, UserID: userID, Title: "Borscht"}}, nil)
		mockReader.EXPECT().
			ListTagIDsByUser(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		details, err := svc.List(context.Background(), userID)
		assert.Nil(t, details)
		assert.EqualError(t, err, "db error")
	})
}

func TestRecipeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockRecipeReader(ctrl)
	mockWriter := services.NewMockRecipeWriter(ctrl)
	mockTags := services.NewMockTagReader(ctrl)
	mockIngredients := services.NewMockIngredientReader(ctrl)

	svc := services.NewRecipeService(mockReader, mockWriter, mockTags, mockIngredients, nil)

	userID := uuid.New()

	t.Run("returns the recipe with its id sets", func(t *testing.T) {
		recipe := &models.RecipeDB{RecipeID: 7, UserID: userID, Title: "Borscht"}
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID, int64(7)).
			Return(recipe, nil)
		mockReader.EXPECT().
			GetTagIDs(gomock.Any(), int64(7)).
			Return([]int64{1, 2}, nil)
		mockReader.EXPECT().
			GetIngredientIDs(gomock.Any(), int64(7)).
			Return([]int64{3}, nil)

		got, tagIDs, ingredientIDs, err := svc.Get(context.Background(), userID, 7)
		assert.NoError(t, err)
		assert.Equal(t, recipe, got)
		assert.Equal(t, []int64{1, 2}, tagIDs)
		assert.Equal(t, []int64{3}, ingredientIDs)
	})

	t.Run("not owned", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID, int64(404)).
			Return(nil, nil)

		got, tagIDs, ingredientIDs, err := svc.Get(context.Background(), userID, 404)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Nil(t, tagIDs)
		assert.Nil(t, ingredientIDs)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID, int64(7)).
			Return(nil, errors.New("db error"))

		got, _, _, err := svc.Get(context.Background(), userID, 7)
		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})
}

func TestRecipeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockRecipeReader(ctrl)
	mockWriter := services.NewMockRecipeWriter(ctrl)
	mockTags := services.NewMockTagReader(ctrl)
	mockIngredients := services.NewMockIngredientReader(ctrl)

	svc := services.NewRecipeService(mockReader, mockWriter, mockTags, mockIngredients, nil)

	userID := uuid.New()

	t.Run("successful creation with tag and ingredient sets", func(t *testing.T) {
		req := models.RecipeRequest{
			Title:       "Borscht",
			TimeMinutes: 90,
			Price:       12.50,
			Link:        "https://example.com/borscht",
			Tags:        []int64{1, 2, 1},
			Ingredients: []int64{5},
		}
		saved := &models.RecipeDB{RecipeID: 7, UserID: userID, Title: "Borscht", TimeMinutes: 90, Price: 12.50}

		mockTags.EXPECT().
			FilterOwned(gomock.Any(), userID, []int64{1, 2}).
			Return([]int64{1, 2}, nil)
		mockIngredients.EXPECT().
			FilterOwned(gomock.Any(), userID, []int64{5}).
			Return([]int64{5}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "Borscht", 90, 12.50, "https://example.com/borscht").
			Return(saved, nil)
		mockWriter.EXPECT().
			SetTags(gomock.Any(), int64(7), []int64{1, 2}).
			Return(nil)
		mockWriter.EXPECT().
			SetIngredients(gomock.Any(), int64(7), []int64{5}).
			Return(nil)

		recipe, tagIDs, ingredientIDs, err := svc.Create(context.Background(), userID, req)
		assert.NoError(t, err)
		assert.Equal(t, saved, recipe)
		assert.Equal(t, []int64{1, 2}, tagIDs)
		assert.Equal(t, []int64{5}, ingredientIDs)
	})

	t.Run("no tags or ingredients", func(t *testing.T) {
		req := models.RecipeRequest{Title: "Toast", TimeMinutes: 5, Price: 1}
		saved := &models.RecipeDB{RecipeID: 8, UserID: userID, Title: "Toast"}

		mockWriter.EXPECT().
			Save(gomock.Any(), userID, "Toast", 5, float64(1), "").
			Return(saved, nil)
		mockWriter.EXPECT().
			SetTags(gomock.Any(), int64(8), gomock.Len(0)).
			Return(nil)
		mockWriter.EXPECT().
			SetIngredients(gomock.Any(), int64(8), gomock.Len(0)).
			Return(nil)

		recipe, _, _, err := svc.Create(context.Background(), userID, req)
		assert.NoError(t, err)
		assert.Equal(t, saved, recipe)
	})

	t.Run("unknown tag", func(t *testing.T) {
		req := models.RecipeRequest{
			Title:       "Borscht",
			TimeMinutes: 90,
			Price:       12.50,
			Tags:        []int64{1, 99},
		}
		mockTags.EXPECT().
			FilterOwned(gomock.Any(), userID, []int64{1, 99}).
			Return([]int64{1}, nil)

		recipe, _, _, err := svc.Create(context.Background(), userID, req)
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, services.ErrUnknownTag)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		req := models.RecipeRequest{
			Title:       "Borscht",
			TimeMinutes: 90,
			Price:       12.50,
			Ingredients: []int64{42},
		}
		mockIngredients.EXPECT().
			FilterOwned(gomock.Any(), userID, []int64{42}).
			Return(nil, nil)

		recipe, _, _, err := svc.Create(context.Background(), userID, req)
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, services.ErrUnknownIngredient)
	})

	validation := []struct {
		name    string
		req     models.RecipeRequest
		wantErr error
	}{
		{
			name:    "empty title",
			req:     models.RecipeRequest{Title: "   ", TimeMinutes: 5, Price: 1},
			wantErr: services.ErrRecipeTitleRequired,
		},
		{
			name:    "negative time",
			req:     models.RecipeRequest{Title: "Toast", TimeMinutes: -1, Price: 1},
			wantErr: services.ErrInvalidTimeMinutes,
		},
		{
			name:    "negative price",
			req:     models.RecipeRequest{Title: "Toast", TimeMinutes: 5, Price: -0.01},
			wantErr: services.ErrInvalidPrice,
		},
		{
			name:    "price too large",
			req:     models.RecipeRequest{Title: "Toast", TimeMinutes: 5, Price: 1000},
			wantErr: services.ErrInvalidPrice,
		},
	}

	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			recipe, _, _, err := svc.Create(context.Background(), userID, tt.req)
			assert.Nil(t, recipe)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockRecipeReader(ctrl)
	mockWriter := services.NewMockRecipeWriter(ctrl)
	mockTags := services.NewMockTagReader(ctrl)
	mockIngredients := services.NewMockIngredientReader(ctrl)

	svc := services.NewRecipeService(mockReader, mockWriter, mockTags, mockIngredients, nil)

	userID := uuid.New()

	t.Run("title-only update leaves the sets alone", func(t *testing.T) {
		title := "Better Borscht"
		updated := &models.RecipeDB{RecipeID: 7, UserID: userID, Title: title}

		mockWriter.EXPECT().
			Update(gomock.Any(), userID, int64(7), &title, nil, nil, nil).
			Return(updated, nil)
		mockReader.EXPECT().
			GetTagIDs(gomock.Any(), int64(7)).
			Return([]int64{1}, nil)
		mockReader.EXPECT().
			GetIngredientIDs(gomock.Any(), int64(7)).
			Return([]int64{5}, nil)

		recipe, tagIDs, ingredientIDs, err := svc.Update(context.Background(), userID, 7, models.UpdateRecipeRequest{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, updated, recipe)
		assert.Equal(t, []int64{1}, tagIDs)
		assert.Equal(t, []int64{5}, ingredientIDs)
	})

	t.Run("tag set is replaced as a whole", func(t *testing.T) {
		tags := []int64{2, 3}
		updated := &models.RecipeDB{RecipeID: 7, UserID: userID, Title: "Borscht"}

		mockTags.EXPECT().
			FilterOwned(gomock.Any(), userID, []int64{2, 3}).
			Return([]int64{2, 3}, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), userID, int64(7), nil, nil, nil, nil).
			Return(updated, nil)
		mockWriter.EXPECT().
			SetTags(gomock.Any(), int64(7), []int64{2, 3}).
			Return(nil)
		mockReader.EXPECT().
			GetTagIDs(gomock.Any(), int64(7)).
			Return([]int64{2, 3}, nil)
		mockReader.EXPECT().
			GetIngredientIDs(gomock.Any(), int64(7)).
			Return(nil, nil)

		recipe, tagIDs, _, err := svc.Update(context.Background(), userID, 7, models.UpdateRecipeRequest{Tags: &tags})
		assert.NoError(t, err)
		assert.Equal(t, updated, recipe)
		assert.Equal(t, []int64{2, 3}, tagIDs)
	})

	t.Run("not owned", func(t *testing.T) {
		title := "Borscht"
		mockWriter.EXPECT().
			Update(gomock.Any(), userID, int64(404), &title, nil, nil, nil).
			Return(nil, nil)

		recipe, _, _, err := svc.Update(context.Background(), userID, 404, models.UpdateRecipeRequest{Title: &title})
		assert.NoError(t, err)
		assert.Nil(t, recipe)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		title := "   "
		recipe, _, _, err := svc.Update(context.Background(), userID, 7, models.UpdateRecipeRequest{Title: &title})
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, services.ErrRecipeTitleRequired)
	})

	t.Run("unknown tag is rejected before writing", func(t *testing.T) {
		tags := []int64{99}
		mockTags.EXPECT().
			FilterOwned(gomock.Any(), userID, []int64{99}).
			Return(nil, nil)

		recipe, _, _, err := svc.Update(context.Background(), userID, 7, models.UpdateRecipeRequest{Tags: &tags})
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, services.ErrUnknownTag)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockRecipeReader(ctrl)
	mockWriter := services.NewMockRecipeWriter(ctrl)
	mockTags := services.NewMockTagReader(ctrl)
	mockIngredients := services.NewMockIngredientReader(ctrl)

	svc := services.NewRecipeService(mockReader, mockWriter, mockTags, mockIngredients, nil)

	userID := uuid.New()

	tests := []struct {
		name      string
		deleted   bool
		writerErr error
		wantErr   error
	}{
		{
			name:    "recipe deleted",
			deleted: true,
		},
		{
			name:    "not owned",
			deleted: false,
		},
		{
			name:      "writer error",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Delete(gomock.Any(), userID, int64(7)).
				Return(tt.deleted, tt.writerErr)

			deleted, err := svc.Delete(context.Background(), userID, 7)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.deleted, deleted)
			}
		})
	}
}
