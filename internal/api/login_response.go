package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// LoginUser 登入成功後回傳的使用者顯示名稱
type LoginUser struct {
	Name string `json:"name" example:"Alice"`
}
