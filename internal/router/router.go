// File: internal/router/router.go
package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"fitcourse/internal/api"
	"fitcourse/internal/cache"
	"fitcourse/internal/database"
	"fitcourse/internal/handler"
	"fitcourse/internal/handler/admin"
	"fitcourse/internal/handler/coaches"
	"fitcourse/internal/handler/creditpackage"
	"fitcourse/internal/handler/skills"
	"fitcourse/internal/handler/users"
	"fitcourse/internal/middleware"
	"fitcourse/internal/worker"
)

// Setup 註冊所有路由、角色閘門與集中式錯誤處理器
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	e.HTTPErrorHandler = ErrorHandler

	// 健康檢查（無認證、無 Envelope）
	e.GET("/healthcheck", handler.HealthcheckHandler())

	apiGroup := e.Group("/api")

	// 使用者註冊、登入與個人資料
	apiUsers := apiGroup.Group("/users")
	apiUsers.POST("/signup", users.SignupHandler(db))
	apiUsers.POST("/login", users.LoginHandler(db))
	apiUsers.GET("/profile", users.GetProfileHandler(db), middleware.RequireAuth)
	apiUsers.PUT("/profile", users.UpdateProfileHandler(db), middleware.RequireAuth)

	// 教練後台：升級與課程管理
	apiAdmin := apiGroup.Group("/admin")
	apiAdmin.POST("/coaches/courses", admin.CreateCourseHandler(db), middleware.RequireCoach)
	apiAdmin.PUT("/coaches/courses/:courseId", admin.UpdateCourseHandler(db), middleware.RequireCoach)
	apiAdmin.POST("/coaches/:userId", admin.PromoteCoachHandler(db))

	// 購買方案目錄
	apiCreditPackage := apiGroup.Group("/credit-package")
	apiCreditPackage.GET("", creditpackage.ListCreditPackagesHandler(db, rdb))
	apiCreditPackage.POST("", creditpackage.CreateCreditPackageHandler(db, rdb, wp))
	apiCreditPackage.DELETE("/:creditPackageId", creditpackage.DeleteCreditPackageHandler(db, rdb, wp))

	// 專長目錄要掛在 /coaches/:coachId 之前，避免被路徑參數吃掉
	apiCoaches := apiGroup.Group("/coaches")
	apiCoaches.GET("/skill", skills.ListSkillsHandler(db, rdb))
	apiCoaches.POST("/skill", skills.CreateSkillHandler(db, rdb, wp))
	apiCoaches.DELETE("/skill/:skillId", skills.DeleteSkillHandler(db, rdb, wp))

	// 教練目錄
	apiCoaches.GET("", coaches.ListCoachesHandler(db))
	apiCoaches.GET("/:coachId", coaches.GetCoachHandler(db))
}

// ErrorHandler 集中式錯誤處理：記錄每個錯誤並輸出統一 Envelope。
// 500 一律回覆通用訊息，不外洩內部錯誤內容。
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "伺服器錯誤"

	var appErr *api.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status == http.StatusNotFound {
			message = "無此路由"
		} else if status != http.StatusInternalServerError {
			message = fmt.Sprintf("%v", httpErr.Message)
		}
	}

	c.Logger().Error(err)

	// 500 與路由不存在的 404 用 error，其餘業務錯誤用 failed
	envelopeStatus := api.StatusFailed
	if status == http.StatusInternalServerError || status == http.StatusNotFound {
		envelopeStatus = api.StatusError
	}

	if writeErr := c.JSON(status, api.Envelope{
		Status:  envelopeStatus,
		Message: message,
	}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
