package api

// swagger:model api.ProfileResponse
type ProfileResponse struct {
	Email string `json:"email" example:"alice@example.com"`
	Name  string `json:"name" example:"Alice"`
}
