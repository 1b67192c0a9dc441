package admin

import (
	"errors"
	"net/http"
	"time"

	"fitcourse/internal/api"
	"fitcourse/internal/database"
	"fitcourse/internal/model"
	"fitcourse/internal/store"
	"fitcourse/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	getUserByID        = store.GetUserByID
	promoteUserToCoach = store.PromoteUserToCoach
	createCourse       = store.CreateCourse
	getCourseByID      = store.GetCourseByID
	updateCourse       = store.UpdateCourse
)

const (
	msgInvalidFields  = "欄位未填寫正確"
	msgUserNotFound   = "使用者不存在"
	msgCourseNotFound = "課程不存在"
)

// @Summary     將使用者升級為教練
// @Description 驗證欄位後，在單一交易內更新角色並建立教練資料
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       userId path string true "使用者 ID"
// @Param       body body api.PromoteCoachRequest true "教練資料"
// @Success     201 {object} api.Envelope{data=api.PromoteCoachResponse}
// @Failure     400 {object} api.Envelope
// @Failure     409 {object} api.Envelope
// @Router      /admin/coaches/{userId} [post]
func PromoteCoachHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		var req api.PromoteCoachRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidInteger(*req.ExperienceYears) ||
			validation.IsNotValidString(*req.Description) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		// 大頭貼為選填；未提供時不做格式檢查
		if !validation.IsUndefined(req.ProfileImageURL) {
			if validation.IsNotValidString(*req.ProfileImageURL) ||
				!validation.IsValidHTTPSURL(*req.ProfileImageURL) {
				return api.NewError(http.StatusBadRequest, msgInvalidFields)
			}
			if !validation.IsValidImageURL(*req.ProfileImageURL) {
				return api.NewError(http.StatusBadRequest, "大頭貼格式錯誤，僅接受.jpg, .jpeg, .png等格式")
			}
		}

		user, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, msgUserNotFound)
			}
			return err
		}
		// 重複升級回 409，不視為冪等成功
		if user.Role == model.RoleCoach {
			return api.NewError(http.StatusConflict, "使用者已經是教練")
		}

		coach, err := promoteUserToCoach(c.Request().Context(), db, &model.Coach{
			UserID:          userID,
			ExperienceYears: *req.ExperienceYears,
			Description:     *req.Description,
			ProfileImageURL: req.ProfileImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				// 條件式更新影響零筆：角色已被併發請求改走
				return api.NewError(http.StatusBadRequest, "更新使用者失敗")
			case errors.Is(err, store.ErrDuplicate):
				return api.NewError(http.StatusConflict, "使用者已經是教練")
			}
			return err
		}

		saved, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil {
			return err
		}

		return api.Success(c, http.StatusCreated, api.PromoteCoachResponse{
			User:  api.UserRole{Name: saved.Name, Role: saved.Role},
			Coach: *coach,
		})
	}
}

// @Summary     開設課程
// @Description 驗證課程欄位與日期順序，確認開課者為教練後建立課程
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body api.CreateCourseRequest true "課程資料"
// @Success     201 {object} api.Envelope{data=api.CourseResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     403 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /admin/coaches/courses [post]
func CreateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidString(req.Name) ||
			validation.IsNotValidString(req.Description) ||
			validation.IsNotValidInteger(*req.MaxParticipants) ||
			!validation.AreValidDates(req.StartAt, req.EndAt) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		skillID, err := uuid.Parse(req.SkillID)
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		user, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, msgUserNotFound)
			}
			return err
		}
		if user.Role != model.RoleCoach {
			return api.NewError(http.StatusBadRequest, "使用者尚未成為教練")
		}

		startAt, _ := time.Parse(validation.CourseTimeLayout, req.StartAt)
		endAt, _ := time.Parse(validation.CourseTimeLayout, req.EndAt)

		created, err := createCourse(c.Request().Context(), db, &model.Course{
			UserID:          userID,
			SkillID:         skillID,
			Name:            req.Name,
			Description:     req.Description,
			StartAt:         startAt,
			EndAt:           endAt,
			MaxParticipants: *req.MaxParticipants,
			MeetingURL:      req.MeetingURL,
		})
		if err != nil {
			return err
		}

		// 重讀以回傳含產生欄位的完整資料列
		course, err := getCourseByID(c.Request().Context(), db, created.ID)
		if err != nil {
			return err
		}

		return api.Success(c, http.StatusCreated, api.CourseResponse{Course: *course})
	}
}

// @Summary     更新課程
// @Description 全欄位更新指定課程，欄位與日期規則與開課相同
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       courseId path string true "課程 ID"
// @Param       body body api.UpdateCourseRequest true "課程資料"
// @Success     200 {object} api.Envelope{data=api.CourseResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     403 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /admin/coaches/courses/{courseId} [put]
func UpdateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		courseID, err := uuid.Parse(c.Param("courseId"))
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		var req api.UpdateCourseRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidString(req.Name) ||
			validation.IsNotValidString(req.Description) ||
			validation.IsNotValidInteger(*req.MaxParticipants) ||
			!validation.AreValidDates(req.StartAt, req.EndAt) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		skillID, err := uuid.Parse(req.SkillID)
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		existing, err := getCourseByID(c.Request().Context(), db, courseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, msgCourseNotFound)
			}
			return err
		}

		startAt, _ := time.Parse(validation.CourseTimeLayout, req.StartAt)
		endAt, _ := time.Parse(validation.CourseTimeLayout, req.EndAt)

		if err := updateCourse(c.Request().Context(), db, &model.Course{
			ID:              existing.ID,
			SkillID:         skillID,
			Name:            req.Name,
			Description:     req.Description,
			StartAt:         startAt,
			EndAt:           endAt,
			MaxParticipants: *req.MaxParticipants,
			MeetingURL:      req.MeetingURL,
		}); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, "更新課程失敗")
			}
			return err
		}

		course, err := getCourseByID(c.Request().Context(), db, courseID)
		if err != nil {
			return err
		}

		return api.Success(c, http.StatusOK, api.CourseResponse{Course: *course})
	}
}
