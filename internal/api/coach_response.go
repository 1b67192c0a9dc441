package api

import (
	"fitcourse/internal/model"

	"github.com/google/uuid"
)

// CoachListItem 教練列表的單筆投影：Coach.id 加上關聯 User.name
// swagger:model api.CoachListItem
type CoachListItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"Alice"`
}

// swagger:model api.CoachDetailResponse
type CoachDetailResponse struct {
	User  UserRole    `json:"user"`
	Coach model.Coach `json:"coach"`
}
