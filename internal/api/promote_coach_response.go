package api

import "fitcourse/internal/model"

// swagger:model api.PromoteCoachResponse
type PromoteCoachResponse struct {
	User  UserRole    `json:"user"`
	Coach model.Coach `json:"coach"`
}

// UserRole 使用者名稱與角色的投影
type UserRole struct {
	Name string `json:"name" example:"Alice"`
	Role string `json:"role" example:"COACH"`
}
