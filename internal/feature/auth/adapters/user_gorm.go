// Package adapters はオーナーアカウントのgormリポジトリを提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"wardrobe_backend/internal/feature/auth/domain/entity"
	"wardrobe_backend/internal/feature/auth/usecase"
)

const (
	// OwnerID はオーナーアカウントの主キーです。
	OwnerID uint = 1
	// uniqueViolation は一意制約違反を示すPostgresのSQLSTATEです。
	uniqueViolation = "23505"
)

type userRepository struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository はuserRepositoryの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// CreateOwner は u をオーナーアカウントとして保存します。
// IDは常に OwnerID のため、同時に実行されたサインアップは一方のみ成功します。
func (r *userRepository) CreateOwner(ctx context.Context, u *entity.User) error {
	db := r.db.WithContext(ctx)
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return usecase.ErrOwnerAlreadyRegistered
	}
	return insertOwner(db, u)
}

func insertOwner(db *gorm.DB, u *entity.User) error {
	u.ID = OwnerID
	if err := db.Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrOwnerAlreadyRegistered
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを検索します。
// 見つからない場合は usecase.ErrUserNotFound を返します。
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
