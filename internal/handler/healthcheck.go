package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthcheckHandler 健康檢查，回傳純文字 OK，不檢查相依服務
// @Summary     Health Check
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "OK"
// @Router      /healthcheck [get]
func HealthcheckHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
}
