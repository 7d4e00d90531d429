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

func TestGetMeHandler(t *testing.T) {
	handler := NewGetMeHandler()

	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com", Name: "John"}

		req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)

		var respBody map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
		assert.Equal(t, map[string]string{"email": "john@example.com", "name": "John"}, respBody)
	})

	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, 401, rr.Code)
	})
}

func TestUpdateMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Email: "john@example.com", Name: "John"}

	tests := []struct {
		name         string
		body         string
		withUser     bool
		mockSetup    func(m *MockProfileUpdater)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:     "name update",
			body:     `{"name":"Johnny"}`,
			withUser: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), user.UserID, gomock.Not(gomock.Nil()), nil).
					Return(&models.UserDB{UserID: user.UserID, Email: "john@example.com", Name: "Johnny"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"email": "john@example.com", "name": "Johnny"},
		},
		{
			name:     "short password",
			body:     `{"password":"pw"}`,
			withUser: true,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), user.UserID, nil, gomock.Not(gomock.Nil())).
					Return(nil, services.ErrPasswordTooShort)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": services.ErrPasswordTooShort.Error()},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			withUser:     true,
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
		{
			name:         "no user in context",
			body:         `{"name":"Johnny"}`,
			withUser:     false,
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUpdateMeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPatch, "/api/user/me", bytes.NewBufferString(tt.body))
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var respBody map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
				assert.Equal(t, tt.expectedBody, respBody)
			}
		})
	}
}

func TestMeNotAllowedHandler(t *testing.T) {
	handler := NewMeNotAllowedHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/user/me", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, PATCH", rr.Header().Get("Allow"))
}
