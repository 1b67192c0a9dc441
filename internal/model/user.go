package model

import (
	"time"

	"github.com/google/uuid"
)

// 使用者角色
const (
	RoleUser  = "USER"
	RoleCoach = "COACH"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
