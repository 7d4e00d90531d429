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

func TestTagService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTagReader(ctrl)
	mockWriter := services.NewMockTagWriter(ctrl)

	svc := services.NewTagService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("returns the user's tags", func(t *testing.T) {
		tags := []models.TagDB{
			{TagID: 2, UserID: userID, Name: "vegan"},
			{TagID: 1, UserID: userID, Name: "dessert"},
		}
		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return(tags, nil)

		got, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, tags, got)
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

func TestTagService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTagReader(ctrl)
	mockWriter := services.NewMockTagWriter(ctrl)

	svc := services.NewTagService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name      string
		tagName   string
		savedName string
		writerErr error
		wantErr   error
	}{
		{
			name:      "successful creation",
			tagName:   "vegan",
			savedName: "vegan",
		},
		{
			name:      "name is trimmed",
			tagName:   "  comfort food  ",
			savedName: "comfort food",
		},
		{
			name:    "empty name",
			tagName: "   ",
			wantErr: services.ErrTagNameRequired,
		},
		{
			name:      "writer error",
			tagName:   "vegan",
			savedName: "vegan",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
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
					call.Return(&models.TagDB{TagID: 1, UserID: userID, Name: tt.savedName}, nil)
				}
			}

			tag, err := svc.Create(context.Background(), userID, tt.tagName)
			if tt.wantErr != nil {
				assert.Nil(t, tag)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.savedName, tag.Name)
			}
		})
	}
}
