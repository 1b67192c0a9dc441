package api

// PromoteCoachRequest 將使用者升級為教練的請求。
// experience_years 與 description 為必填；profile_image_url 為選填，
// 以指標區分「未提供」與「提供了空值」。
// swagger:model api.PromoteCoachRequest
type PromoteCoachRequest struct {
	ExperienceYears *int    `json:"experience_years" validate:"required" example:"3"`
	Description     *string `json:"description" validate:"required" example:"資深重訓教練"`
	ProfileImageURL *string `json:"profile_image_url,omitempty" example:"https://cdn.example.com/avatar.png"`
}
