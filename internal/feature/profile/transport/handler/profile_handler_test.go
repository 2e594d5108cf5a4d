package handler_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/feature/profile/transport/handler"
	"wardrobe_backend/internal/feature/profile/usecase"
	"wardrobe_backend/internal/shared/imaging"
)

type mockProfileUsecase struct {
	UploadPhotoFunc func(ctx context.Context, data []byte) (*entity.SkinProfile, error)
	GetFunc         func(ctx context.Context) (*entity.SkinProfile, error)
}

func (m *mockProfileUsecase) UploadPhoto(ctx context.Context, data []byte) (*entity.SkinProfile, error) {
	return m.UploadPhotoFunc(ctx, data)
}

func (m *mockProfileUsecase) Get(ctx context.Context) (*entity.SkinProfile, error) {
	return m.GetFunc(ctx)
}

func photoRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, "me.jpg")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/user/upload-photo", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestProfileHandler_UploadPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		field          string
		mockUpload     func(ctx context.Context, data []byte) (*entity.SkinProfile, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "success",
			field: "photo",
			mockUpload: func(ctx context.Context, data []byte) (*entity.SkinProfile, error) {
				assert.Equal(t, []byte("jpeg"), data)
				return &entity.SkinProfile{ID: 1, PhotoURL: "/uploads/user-photos/me.jpg", SkinTone: entity.ToneMedium, SkinUndertone: entity.UndertoneNeutral}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"message":"Photo analyzed successfully","photo_url":"/uploads/user-photos/me.jpg",
				"skin_tone":"MEDIUM","skin_undertone":"NEUTRAL"}`,
		},
		{
			name:           "error: wrong field",
			field:          "image",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"a photo file is required"}`,
		},
		{
			name:  "error: no face",
			field: "photo",
			mockUpload: func(ctx context.Context, data []byte) (*entity.SkinProfile, error) {
				return nil, imaging.NewProcessingError("no face detected in the uploaded photo, please upload a clear, front-facing photo", nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"no face detected in the uploaded photo, please upload a clear, front-facing photo"}`,
		},
		{
			name:  "error: store",
			field: "photo",
			mockUpload: func(ctx context.Context, data []byte) (*entity.SkinProfile, error) {
				return nil, usecase.ErrImageUpload
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to upload the photo, please try again"}`,
		},
		{
			name:  "error: unexpected",
			field: "photo",
			mockUpload: func(ctx context.Context, data []byte) (*entity.SkinProfile, error) {
				return nil, errors.New("vision API request failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"an unexpected error occurred while processing your photo"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewProfileHandler(&mockProfileUsecase{UploadPhotoFunc: tt.mockUpload})
			router := gin.New()
			router.POST("/user/upload-photo", h.UploadPhoto)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, photoRequest(t, tt.field, []byte("jpeg")))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestProfileHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	tests := []struct {
		name           string
		mockGet        func(ctx context.Context) (*entity.SkinProfile, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			mockGet: func(ctx context.Context) (*entity.SkinProfile, error) {
				return &entity.SkinProfile{ID: 1, PhotoURL: "p", SkinTone: entity.ToneDark, SkinUndertone: entity.UndertoneCool, CreatedAt: ts, UpdatedAt: ts}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"id":1,"photo_url":"p","skin_tone":"DARK","skin_undertone":"COOL",
				"created_at":"2024-02-03T04:05:06Z","updated_at":"2024-02-03T04:05:06Z"}`,
		},
		{
			name: "not found",
			mockGet: func(ctx context.Context) (*entity.SkinProfile, error) {
				return nil, usecase.ErrProfileNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no user profile found, please upload a photo first"}`,
		},
		{
			name: "error",
			mockGet: func(ctx context.Context) (*entity.SkinProfile, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to load the profile"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewProfileHandler(&mockProfileUsecase{GetFunc: tt.mockGet})
			router := gin.New()
			router.GET("/user/profile", h.Get)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/profile", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
