package api

// CreateCourseRequest 開設課程的請求。日期需符合 "2006-01-02 15:04:05" 格式且 start_at 早於 end_at，
// 順序由 handler 以 validation.AreValidDates 檢查。
// swagger:model api.CreateCourseRequest
type CreateCourseRequest struct {
	UserID          string `json:"user_id" validate:"required,uuid" example:"b5d8f7a0-0000-0000-0000-000000000000"`
	SkillID         string `json:"skill_id" validate:"required,uuid" example:"c9e1a2b3-0000-0000-0000-000000000000"`
	Name            string `json:"name" validate:"required" example:"瑜伽入門"`
	Description     string `json:"description" validate:"required" example:"適合初學者的課程"`
	StartAt         string `json:"start_at" validate:"required,coursetime" example:"2025-01-01 09:00:00"`
	EndAt           string `json:"end_at" validate:"required,coursetime" example:"2025-01-01 10:00:00"`
	MaxParticipants *int   `json:"max_participants" validate:"required" example:"10"`
	MeetingURL      string `json:"meeting_url" validate:"required,httpsurl" example:"https://meet.example.com/abc"`
}
