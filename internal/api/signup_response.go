package api

import "github.com/google/uuid"

// swagger:model api.SignupResponse
type SignupResponse struct {
	User UserSummary `json:"user"`
}

// UserSummary 註冊成功後回傳的使用者摘要
type UserSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"Alice"`
}
