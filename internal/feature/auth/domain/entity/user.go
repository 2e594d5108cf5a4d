// Package entity はオーナーアカウントのエンティティを定義します。
package entity

import "time"

// User はワードローブの唯一のオーナーアカウントを表します。
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"` // bcryptハッシュ
	CreatedAt time.Time
	UpdatedAt time.Time
}
