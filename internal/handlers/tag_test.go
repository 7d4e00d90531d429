package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func TestListTagsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com"}

	t.Run("returns the caller's tags", func(t *testing.T) {
		mockSvc := NewMockTagLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), user.UserID).
			Return([]models.TagDB{
				{TagID: 2, UserID: user.UserID, Name: "vegan"},
				{TagID: 1, UserID: user.UserID, Name: "dessert"},
			}, nil)

		handler := NewListTagsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/recipe/tags", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp []models.TagResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []models.TagResponse{
			{ID: 2, Name: "vegan"},
			{ID: 1, Name: "dessert"},
		}, resp)
	})

	t.Run("empty list is an array, not null", func(t *testing.T) {
		mockSvc := NewMockTagLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), user.UserID).
			Return(nil, nil)

		handler := NewListTagsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/recipe/tags", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewListTagsHandler(NewMockTagLister(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/api/recipe/tags", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockTagLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), user.UserID).
			Return(nil, errors.New("db error"))

		handler := NewListTagsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/recipe/tags", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 500, rr.Code)
	})
}

func TestCreateTagHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com"}

	tests := []struct {
		name         string
		body         string
		withUser     bool
		mockSetup    func(m *MockTagCreator)
		expectedCode int
	}{
		{
			name:     "success",
			body:     `{"name":"vegan"}`,
			withUser: true,
			mockSetup: func(m *MockTagCreator) {
				m.EXPECT().
					Create(gomock.Any(), user.UserID, "vegan").
					Return(&models.TagDB{TagID: 1, UserID: user.UserID, Name: "vegan"}, nil)
			},
			expectedCode: 201,
		},
		{
			name:     "empty name",
			body:     `{"name":""}`,
			withUser: true,
			mockSetup: func(m *MockTagCreator) {
				m.EXPECT().
					Create(gomock.Any(), user.UserID, "").
					Return(nil, services.ErrTagNameRequired)
			},
			expectedCode: 400,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			withUser:     true,
			mockSetup:    func(m *MockTagCreator) {},
			expectedCode: 400,
		},
		{
			name:         "no user in context",
			body:         `{"name":"vegan"}`,
			withUser:     false,
			mockSetup:    func(m *MockTagCreator) {},
			expectedCode: 401,
		},
		{
			name:     "service error",
			body:     `{"name":"vegan"}`,
			withUser: true,
			mockSetup: func(m *MockTagCreator) {
				m.EXPECT().
					Create(gomock.Any(), user.UserID, "vegan").
					Return(nil, errors.New("db error"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTagCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCreateTagHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/recipe/tags", bytes.NewBufferString(tt.body))
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == 201 {
				var resp models.TagResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, models.TagResponse{ID: 1, Name: "vegan"}, resp)
			}
		})
	}
}
