package api

// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required" example:"Alice"`
}
