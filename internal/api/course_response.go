package api

import "fitcourse/internal/model"

// swagger:model api.CourseResponse
type CourseResponse struct {
	Course model.Course `json:"course"`
}
