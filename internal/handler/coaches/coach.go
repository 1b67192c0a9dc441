package coaches

import (
	"errors"
	"net/http"
	"strconv"

	"fitcourse/internal/api"
	"fitcourse/internal/database"
	"fitcourse/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	listCoaches  = store.ListCoaches
	getCoachByID = store.GetCoachByID
	getUserByID  = store.GetUserByID
)

const (
	defaultPer  = 10
	defaultPage = 1

	msgInvalidFields = "欄位未填寫正確"
)

// pageParam 解析分頁參數：缺省用預設值，給了但不是正整數回報錯誤
func pageParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, api.NewError(http.StatusBadRequest, msgInvalidFields)
	}
	return n, nil
}

// @Summary     取得教練列表
// @Description 依建立順序分頁，回傳教練 ID 與使用者名稱
// @Tags        coaches
// @Produce     json
// @Param       per  query int false "每頁筆數" default(10)
// @Param       page query int false "頁碼" default(1)
// @Success     200 {object} api.Envelope{data=[]api.CoachListItem}
// @Failure     400 {object} api.Envelope
// @Router      /coaches [get]
func ListCoachesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		per, err := pageParam(c, "per", defaultPer)
		if err != nil {
			return err
		}
		page, err := pageParam(c, "page", defaultPage)
		if err != nil {
			return err
		}

		rows, err := listCoaches(c.Request().Context(), db, per, page)
		if err != nil {
			return err
		}

		items := make([]api.CoachListItem, 0, len(rows))
		for _, r := range rows {
			items = append(items, api.CoachListItem{ID: r.ID, Name: r.Name})
		}
		return api.Success(c, http.StatusOK, items)
	}
}

// @Summary     取得教練詳細資料
// @Tags        coaches
// @Produce     json
// @Param       coachId path string true "教練 ID"
// @Success     200 {object} api.Envelope{data=api.CoachDetailResponse}
// @Failure     400 {object} api.Envelope
// @Router      /coaches/{coachId} [get]
func GetCoachHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		coachID, err := uuid.Parse(c.Param("coachId"))
		if err != nil {
			return api.NewError(http.StatusBadRequest, msgInvalidFields)
		}

		coach, err := getCoachByID(c.Request().Context(), db, coachID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return api.NewError(http.StatusBadRequest, "找不到該教練")
			}
			return err
		}

		user, err := getUserByID(c.Request().Context(), db, coach.UserID)
		if err != nil {
			return err
		}

		return api.Success(c, http.StatusOK, api.CoachDetailResponse{
			User:  api.UserRole{Name: user.Name, Role: user.Role},
			Coach: *coach,
		})
	}
}
