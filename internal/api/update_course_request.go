package api

// UpdateCourseRequest 更新課程的請求，欄位規則與建立課程相同（不含 user_id）
// swagger:model api.UpdateCourseRequest
type UpdateCourseRequest struct {
	SkillID         string `json:"skill_id" validate:"required,uuid" example:"c9e1a2b3-0000-0000-0000-000000000000"`
	Name            string `json:"name" validate:"required" example:"瑜伽入門"`
	Description     string `json:"description" validate:"required" example:"適合初學者的課程"`
	StartAt         string `json:"start_at" validate:"required,coursetime" example:"2025-01-01 09:00:00"`
	EndAt           string `json:"end_at" validate:"required,coursetime" example:"2025-01-01 10:00:00"`
	MaxParticipants *int   `json:"max_participants" validate:"required" example:"10"`
	MeetingURL      string `json:"meeting_url" validate:"required,httpsurl" example:"https://meet.example.com/abc"`
}
