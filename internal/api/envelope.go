package api

import "github.com/labstack/echo/v4"

// Envelope 所有 API 的統一回應包裝
// swagger:model api.Envelope
type Envelope struct {
	// 回應狀態：success / failed / error
	Status string `json:"status" example:"success"`
	// 錯誤描述，成功時省略
	Message string `json:"message,omitempty" example:""`
	// 回應資料，無資料時省略
	Data any `json:"data,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
)

// Success 以 success 狀態寫出資料回應
func Success(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Status: StatusSuccess, Data: data})
}

// SuccessNoData 以 success 狀態寫出無資料回應
func SuccessNoData(c echo.Context, code int) error {
	return c.JSON(code, Envelope{Status: StatusSuccess})
}
