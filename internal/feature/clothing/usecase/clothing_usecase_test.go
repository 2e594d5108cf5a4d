package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe_backend/internal/feature/clothing/analysis"
	"wardrobe_backend/internal/feature/clothing/domain/entity"
	"wardrobe_backend/internal/feature/clothing/usecase"
	"wardrobe_backend/internal/shared/imaging"
)

var errDB = errors.New("database error")

type mockClothingRepository struct {
	CreateFunc  func(ctx context.Context, item *entity.ClothingItem) error
	ListFunc    func(ctx context.Context) ([]entity.ClothingItem, error)
	CreateCalls int
}

func (m *mockClothingRepository) Create(ctx context.Context, item *entity.ClothingItem) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	item.ID = 1
	return nil
}

func (m *mockClothingRepository) List(ctx context.Context) ([]entity.ClothingItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc is not implemented")
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
	return "/uploads/" + folder + "/x.png", nil
}

type mockColorExtractor struct {
	ClothingColorsFunc func(px *imaging.Pixels) (analysis.Colors, error)
}

func (m *mockColorExtractor) ClothingColors(px *imaging.Pixels) (analysis.Colors, error) {
	return m.ClothingColorsFunc(px)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 128, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func strPtr(s string) *string { return &s }

func TestClothingUsecase_Upload(t *testing.T) {
	ctx := context.Background()
	valid := pngBytes(t)
	navy := analysis.Colors{Primary: "NAVY", Secondary: strPtr("WHITE")}

	tests := []struct {
		name          string
		input         usecase.UploadInput
		colors        func(px *imaging.Pixels) (analysis.Colors, error)
		save          func(ctx context.Context, folder string, data []byte) (string, error)
		create        func(ctx context.Context, item *entity.ClothingItem) error
		wantErr       error
		wantSaveCalls int
	}{
		{
			name:  "success: lowercase metadata is normalized",
			input: usecase.UploadInput{ImageData: valid, ClothingType: "shirt", Occasion: "office", Season: "winter"},
			colors: func(px *imaging.Pixels) (analysis.Colors, error) {
				assert.Equal(t, imaging.ClothingResizeWidth, px.Width)
				assert.Equal(t, imaging.ClothingResizeHeight, px.Height)
				return navy, nil
			},
			wantSaveCalls: 1,
		},
		{
			name:    "error: unknown clothing type",
			input:   usecase.UploadInput{ImageData: valid, ClothingType: "CAPE", Occasion: "OFFICE", Season: "ALL"},
			wantErr: usecase.ErrInvalidMetadata,
		},
		{
			name:    "error: unknown occasion",
			input:   usecase.UploadInput{ImageData: valid, ClothingType: "SHIRT", Occasion: "GYM", Season: "ALL"},
			wantErr: usecase.ErrInvalidMetadata,
		},
		{
			name:    "error: unknown season",
			input:   usecase.UploadInput{ImageData: valid, ClothingType: "SHIRT", Occasion: "OFFICE", Season: "SPRING"},
			wantErr: usecase.ErrInvalidMetadata,
		},
		{
			name:    "error: empty image",
			input:   usecase.UploadInput{ClothingType: "SHIRT", Occasion: "OFFICE", Season: "ALL"},
			wantErr: imaging.ErrEmptyUpload,
		},
		{
			name:    "error: undecodable image is not stored",
			input:   usecase.UploadInput{ImageData: []byte("nope"), ClothingType: "SHIRT", Occasion: "OFFICE", Season: "ALL"},
			wantErr: imaging.ErrImageProcessing,
		},
		{
			name:  "error: extractor failure is not stored",
			input: usecase.UploadInput{ImageData: valid, ClothingType: "SHIRT", Occasion: "OFFICE", Season: "ALL"},
			colors: func(px *imaging.Pixels) (analysis.Colors, error) {
				return analysis.Colors{}, imaging.NewProcessingError("bad", nil)
			},
			wantErr: imaging.ErrImageProcessing,
		},
		{
			name:  "error: image store failure",
			input: usecase.UploadInput{ImageData: valid, ClothingType: "SHIRT", Occasion: "OFFICE", Season: "ALL"},
			save: func(ctx context.Context, folder string, data []byte) (string, error) {
				return "", errors.New("bucket unavailable")
			},
			wantErr:       usecase.ErrImageUpload,
			wantSaveCalls: 1,
		},
		{
			name:  "error: repository failure",
			input: usecase.UploadInput{ImageData: valid, ClothingType: "SHIRT", Occasion: "OFFICE", Season: "ALL"},
			create: func(ctx context.Context, item *entity.ClothingItem) error {
				return errDB
			},
			wantErr:       errDB,
			wantSaveCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := tt.colors
			if colors == nil {
				colors = func(px *imaging.Pixels) (analysis.Colors, error) { return navy, nil }
			}
			repo := &mockClothingRepository{CreateFunc: tt.create}
			store := &mockImageStore{SaveFunc: tt.save}
			uc := usecase.NewClothingUsecase(repo, store, &mockColorExtractor{ClothingColorsFunc: colors})

			item, err := uc.Upload(ctx, tt.input)

			assert.Equal(t, tt.wantSaveCalls, store.SaveCalls)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.CreateCalls)
			assert.Equal(t, entity.ClothingShirt, item.ClothingType)
			assert.Equal(t, entity.OccasionOffice, item.Occasion)
			assert.Equal(t, entity.SeasonWinter, item.Season)
			assert.Equal(t, "/uploads/clothing/x.png", item.ImageURL)
			require.NotNil(t, item.DominantColor)
			assert.Equal(t, "NAVY", *item.DominantColor)
			require.NotNil(t, item.SecondaryColor)
			assert.Equal(t, "WHITE", *item.SecondaryColor)
		})
	}
}

func TestClothingUsecase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		want := []entity.ClothingItem{{ID: 1}, {ID: 2}}
		repo := &mockClothingRepository{ListFunc: func(ctx context.Context) ([]entity.ClothingItem, error) {
			return want, nil
		}}
		uc := usecase.NewClothingUsecase(repo, &mockImageStore{}, nil)

		got, err := uc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("error", func(t *testing.T) {
		repo := &mockClothingRepository{ListFunc: func(ctx context.Context) ([]entity.ClothingItem, error) {
			return nil, errDB
		}}
		uc := usecase.NewClothingUsecase(repo, &mockImageStore{}, nil)

		_, err := uc.List(ctx)

		assert.ErrorIs(t, err, errDB)
	})
}
