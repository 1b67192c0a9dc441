package users

import (
	"errors"
	"net/http"
	"time"

	"fitcourse/internal/api"
	"fitcourse/internal/database"
	"fitcourse/internal/middleware"
	"fitcourse/internal/model"
	"fitcourse/internal/service"
	"fitcourse/internal/store"
	"fitcourse/internal/validation"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
	getUserByID      = store.GetUserByID
	getUserByEmail   = store.GetUserByEmail
	updateUserName   = store.UpdateUserName
)

// 登入令牌效期
const tokenTTL = 24 * time.Hour

const (
	msgInvalidFields   = "欄位未填寫正確"
	msgInvalidPassword = "密碼不符合規則，需要包含英文數字大小寫，最短8個字，最長16個字"
	msgLoginFailed     = "使用者不存在或密碼輸入錯誤"
)

// @Summary     註冊使用者
// @Description 驗證欄位與密碼規則後建立新帳號
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.Envelope{data=api.SignupResponse}
// @Failure     400 {object} api.Envelope
// @Failure     409 {object} api.Envelope
// @Router      /users/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidString(req.Name) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if !validation.IsValidPassword(req.Password) {
			return api.NewError(http.StatusBadRequest, msgInvalidPassword)
		}

		// Email 重複的友善訊息靠預查；併發下的漏網由唯一鍵接住
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return api.NewError(http.StatusConflict, "Email 已被使用")
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return err
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return api.NewError(http.StatusConflict, "Email 已被使用")
			}
			return err
		}

		c.Logger().Infof("新建立的使用者ID: %s", user.ID)
		return api.Success(c, http.StatusCreated, api.SignupResponse{
			User: api.UserSummary{ID: user.ID, Name: user.Name},
		})
	}
}

// @Summary     登入
// @Description 驗證帳號密碼並回傳帶使用者 ID 與角色的存取令牌。
// @Description 帳號不存在與密碼錯誤回覆相同訊息，避免帳號枚舉。
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     201 {object} api.Envelope{data=api.LoginResponse}
// @Failure     400 {object} api.Envelope
// @Router      /users/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if !validation.IsValidPassword(req.Password) {
			return api.NewError(http.StatusBadRequest, msgInvalidPassword)
		}

		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, msgLoginFailed)
			}
			return err
		}

		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgLoginFailed)
		}

		token, err := issueAccessToken(*authUser, tokenTTL)
		if err != nil {
			return err
		}

		return api.Success(c, http.StatusCreated, api.LoginResponse{
			Token: token,
			User:  api.LoginUser{Name: authUser.Name},
		})
	}
}

// @Summary     取得個人資料
// @Description 透過存取令牌取得當前使用者的 Email 與名稱
// @Tags        users
// @Produce     json
// @Success     200 {object} api.Envelope{data=api.ProfileResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /users/profile [get]
func GetProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, "使用者不存在")
			}
			return err
		}

		return api.Success(c, http.StatusOK, api.ProfileResponse{
			Email: user.Email,
			Name:  user.Name,
		})
	}
}

// @Summary     更新個人資料
// @Description 更新當前使用者的顯示名稱；名稱未變更視為錯誤
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.UpdateProfileRequest true "新名稱"
// @Success     200 {object} api.Envelope
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /users/profile [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidString(req.Name) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, "使用者不存在")
			}
			return err
		}
		if user.Name == req.Name {
			return api.NewError(http.StatusBadRequest, "使用者名稱未變更")
		}

		if err := updateUserName(c.Request().Context(), db, claims.UserID, req.Name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, "更新使用者失敗")
			}
			return err
		}

		return api.SuccessNoData(c, http.StatusOK)
	}
}
