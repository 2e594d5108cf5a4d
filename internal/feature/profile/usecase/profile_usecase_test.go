package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe_backend/internal/feature/profile/analysis"
	"wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/feature/profile/usecase"
	"wardrobe_backend/internal/shared/imaging"
)

type mockProfileRepository struct {
	GetFunc   func(ctx context.Context) (*entity.SkinProfile, error)
	SaveFunc  func(ctx context.Context, p *entity.SkinProfile) error
	SaveCalls int
}

func (m *mockProfileRepository) Get(ctx context.Context) (*entity.SkinProfile, error) {
	return m.GetFunc(ctx)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *entity.SkinProfile) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	p.ID = 1
	return nil
}

type mockImageStore struct {
	SaveFunc  func(ctx context.Context, folder string, data []byte) (string, error)
	SaveCalls int
}

func (m *mockImageStore) Save(ctx context.Context, folder string, data []byte) (string, error) {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, folder, data)
	}
	return "/uploads/" + folder + "/me.png", nil
}

type mockSkinAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, px *imaging.Pixels) (analysis.Result, error)
}

func (m *mockSkinAnalyzer) Analyze(ctx context.Context, px *imaging.Pixels) (analysis.Result, error) {
	return m.AnalyzeFunc(ctx, px)
}

func photo(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestProfileUsecase_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	valid := photo(t)
	fairWarm := func(ctx context.Context, px *imaging.Pixels) (analysis.Result, error) {
		return analysis.Result{Tone: entity.ToneFair, Undertone: entity.UndertoneWarm}, nil
	}
	errDB := errors.New("db down")

	tests := []struct {
		name          string
		data          []byte
		analyze       func(ctx context.Context, px *imaging.Pixels) (analysis.Result, error)
		save          func(ctx context.Context, folder string, data []byte) (string, error)
		persist       func(ctx context.Context, p *entity.SkinProfile) error
		wantErr       error
		wantSaveCalls int
	}{
		{name: "success", data: valid, analyze: fairWarm, wantSaveCalls: 1},
		{name: "error: empty", data: nil, analyze: fairWarm, wantErr: imaging.ErrEmptyUpload},
		{name: "error: undecodable", data: []byte("??"), analyze: fairWarm, wantErr: imaging.ErrImageProcessing},
		{
			name: "error: no face is not stored",
			data: valid,
			analyze: func(ctx context.Context, px *imaging.Pixels) (analysis.Result, error) {
				return analysis.Result{}, imaging.NewProcessingError("no face detected", nil)
			},
			wantErr: imaging.ErrImageProcessing,
		},
		{
			name:    "error: store",
			data:    valid,
			analyze: fairWarm,
			save: func(ctx context.Context, folder string, data []byte) (string, error) {
				return "", errors.New("disk full")
			},
			wantErr:       usecase.ErrImageUpload,
			wantSaveCalls: 1,
		},
		{
			name:    "error: repository",
			data:    valid,
			analyze: fairWarm,
			persist: func(ctx context.Context, p *entity.SkinProfile) error {
				return errDB
			},
			wantErr:       errDB,
			wantSaveCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockImageStore{SaveFunc: tt.save}
			repo := &mockProfileRepository{SaveFunc: tt.persist}
			uc := usecase.NewProfileUsecase(repo, store, &mockSkinAnalyzer{AnalyzeFunc: tt.analyze})

			p, err := uc.UploadPhoto(ctx, tt.data)

			assert.Equal(t, tt.wantSaveCalls, store.SaveCalls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.SaveCalls)
			assert.Equal(t, "/uploads/user-photos/me.png", p.PhotoURL)
			assert.Equal(t, entity.ToneFair, p.SkinTone)
			assert.Equal(t, entity.UndertoneWarm, p.SkinUndertone)
		})
	}
}

func TestProfileUsecase_Get(t *testing.T) {
	repo := &mockProfileRepository{GetFunc: func(ctx context.Context) (*entity.SkinProfile, error) {
		return nil, usecase.ErrProfileNotFound
	}}
	uc := usecase.NewProfileUsecase(repo, &mockImageStore{}, nil)

	_, err := uc.Get(context.Background())

	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
}
