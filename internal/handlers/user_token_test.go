package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/recipe-api/internal/services"
)

func TestCreateTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("tok-abc", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"token": "tok-abc"},
		},
		{
			name: "invalid credentials",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Unable to authenticate with provided credentials"},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Unable to authenticate with provided credentials"},
		},
		{
			name: "internal server error",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCreateTokenHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/user/token", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var respBody map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

// Bad credentials and a malformed body must be indistinguishable to the
// caller.
func TestCreateTokenHandler_UniformFailureShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), "john@example.com", "wrong").
		Return("", services.ErrInvalidCredentials)

	handler := NewCreateTokenHandler(mockSvc)

	badCreds := httptest.NewRecorder()
	handler.ServeHTTP(badCreds, httptest.NewRequest(http.MethodPost, "/api/user/token",
		bytes.NewBufferString(`{"email":"john@example.com","password":"wrong"}`)))

	badBody := httptest.NewRecorder()
	handler.ServeHTTP(badBody, httptest.NewRequest(http.MethodPost, "/api/user/token",
		bytes.NewBufferString(`{invalid`)))

	assert.Equal(t, badCreds.Code, badBody.Code)
	assert.JSONEq(t, badCreds.Body.String(), badBody.Body.String())
}
