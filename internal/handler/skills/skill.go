// Package skills 處理教練專長目錄的查詢與維護，快取策略與購買方案目錄一致。
package skills

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fitcourse/internal/api"
	"fitcourse/internal/cache"
	"fitcourse/internal/database"
	"fitcourse/internal/model"
	"fitcourse/internal/store"
	"fitcourse/internal/validation"
	"fitcourse/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

var (
	listSkills     = store.ListSkills
	getSkillByName = store.GetSkillByName
	createSkill    = store.CreateSkill
	deleteSkill    = store.DeleteSkill
)

const (
	cacheKey = "catalog:skills"
	cacheTTL = 5 * time.Minute

	msgInvalidFields = "欄位未填寫正確"
	msgDuplicate     = "資料重複"
	msgBadID         = "ID錯誤"
)

// @Summary     取得專長列表
// @Tags        skills
// @Produce     json
// @Success     200 {object} api.Envelope{data=[]model.Skill}
// @Router      /coaches/skill [get]
func ListSkillsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var skills []model.Skill
			if err := json.Unmarshal([]byte(cached), &skills); err == nil {
				return api.Success(c, http.StatusOK, skills)
			}
		} else if !errors.Is(err, redis.Nil) {
			c.Logger().Warnf("skill cache read failed: %v", err)
		}

		skills, err := listSkills(ctx, db)
		if err != nil {
			return err
		}
		if skills == nil {
			skills = []model.Skill{}
		}

		if body, err := json.Marshal(skills); err == nil {
			if err := rdb.Set(ctx, cacheKey, body, cacheTTL).Err(); err != nil {
				c.Logger().Warnf("skill cache write failed: %v", err)
			}
		}

		return api.Success(c, http.StatusOK, skills)
	}
}

// @Summary     新增專長
// @Description 名稱重複回 409
// @Tags        skills
// @Accept      json
// @Produce     json
// @Param       body body api.CreateSkillRequest true "專長資料"
// @Success     200 {object} api.Envelope{data=model.Skill}
// @Failure     400 {object} api.Envelope
// @Failure     409 {object} api.Envelope
// @Router      /coaches/skill [post]
func CreateSkillHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateSkillRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidString(req.Name) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		if _, err := getSkillByName(c.Request().Context(), db, req.Name); err == nil {
			return api.NewError(http.StatusConflict, msgDuplicate)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		created, err := createSkill(c.Request().Context(), db, &model.Skill{Name: req.Name})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return api.NewError(http.StatusConflict, msgDuplicate)
			}
			return err
		}

		wp.Submit(func() { rdb.Del(context.Background(), cacheKey) })
		return api.Success(c, http.StatusOK, created)
	}
}

// @Summary     刪除專長
// @Tags        skills
// @Produce     json
// @Param       skillId path string true "專長 ID"
// @Success     200 {object} api.Envelope
// @Failure     400 {object} api.Envelope
// @Router      /coaches/skill/{skillId} [delete]
func DeleteSkillHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("skillId"))
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgBadID)
		}

		if err := deleteSkill(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, msgBadID)
			}
			return err
		}

		wp.Submit(func() { rdb.Del(context.Background(), cacheKey) })
		return api.SuccessNoData(c, http.StatusOK)
	}
}
