package api

// swagger:model api.CreateSkillRequest
type CreateSkillRequest struct {
	Name string `json:"name" validate:"required" example:"重訓"`
}
