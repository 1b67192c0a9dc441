// Package creditpackage 處理購買方案目錄的查詢與維護。
// 列表走 Redis 快取，寫入後由 worker pool 在背景失效快取。
package creditpackage

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
	listCreditPackages     = store.ListCreditPackages
	getCreditPackageByName = store.GetCreditPackageByName
	createCreditPackage    = store.CreateCreditPackage
	deleteCreditPackage    = store.DeleteCreditPackage
)

const (
	cacheKey = "catalog:credit-packages"
	cacheTTL = 5 * time.Minute

	msgInvalidFields = "欄位未填寫正確"
	msgDuplicate     = "資料重複"
	msgBadID         = "ID錯誤"
)

// @Summary     取得購買方案列表
// @Tags        credit-package
// @Produce     json
// @Success     200 {object} api.Envelope{data=[]model.CreditPackage}
// @Router      /credit-package [get]
func ListCreditPackagesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var packages []model.CreditPackage
			if err := json.Unmarshal([]byte(cached), &packages); err == nil {
				return api.Success(c, http.StatusOK, packages)
			}
		} else if !errors.Is(err, redis.Nil) {
			c.Logger().Warnf("credit package cache read failed: %v", err)
		}

		packages, err := listCreditPackages(ctx, db)
		if err != nil {
			return err
		}
		if packages == nil {
			packages = []model.CreditPackage{}
		}

		if body, err := json.Marshal(packages); err == nil {
			if err := rdb.Set(ctx, cacheKey, body, cacheTTL).Err(); err != nil {
				c.Logger().Warnf("credit package cache write failed: %v", err)
			}
		}

		return api.Success(c, http.StatusOK, packages)
	}
}

// @Summary     新增購買方案
// @Description 名稱重複回 409
// @Tags        credit-package
// @Accept      json
// @Produce     json
// @Param       body body api.CreateCreditPackageRequest true "方案資料"
// @Success     200 {object} api.Envelope{data=model.CreditPackage}
// @Failure     400 {object} api.Envelope
// @Failure     409 {object} api.Envelope
// @Router      /credit-package [post]
func CreateCreditPackageHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCreditPackageRequest
		if err := c.Bind(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if err := c.Validate(&req); err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}
		if validation.IsNotValidString(req.Name) ||
			validation.IsNotValidInteger(*req.CreditAmount) ||
			validation.IsNotValidInteger(*req.Price) {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		if _, err := getCreditPackageByName(c.Request().Context(), db, req.Name); err == nil {
			return api.NewError(http.StatusConflict, msgDuplicate)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		created, err := createCreditPackage(c.Request().Context(), db, &model.CreditPackage{
			Name:         req.Name,
			CreditAmount: *req.CreditAmount,
			Price:        *req.Price,
		})
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

// @Summary     刪除購買方案
// @Tags        credit-package
// @Produce     json
// @Param       creditPackageId path string true "方案 ID"
// @Success     200 {object} api.Envelope
// @Failure     400 {object} api.Envelope
// @Router      /credit-package/{creditPackageId} [delete]
func DeleteCreditPackageHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("creditPackageId"))
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		if err := deleteCreditPackage(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, msgBadID)
			}
			return err
		}

		wp.Submit(func() { rdb.Del(context.Background(), cacheKey) })
		return api.SuccessNoData(c, http.StatusOK)
	}
}
