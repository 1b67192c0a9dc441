package coaches

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcourse/internal/api"
	"fitcourse/internal/database"
	"fitcourse/internal/model"
	"fitcourse/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	listCoaches = store.ListCoaches
	getCoachByID = store.GetCoachByID
	getUserByID = store.GetUserByID
}

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var appErr *api.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.Status)
	require.Contains(t, appErr.Message, msg)
}

func newListCtx(e *echo.Echo, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListCoachesHandler(t *testing.T) {
	e := echo.New()

	t.Run("defaults applied when params absent", func(t *testing.T) {
		t.Cleanup(restore)
		listCoaches = func(_ context.Context, _ database.DB, per, page int) ([]store.CoachListRow, error) {
			require.Equal(t, defaultPer, per)
			require.Equal(t, defaultPage, page)
			return nil, nil
		}
		ctx, rec := newListCtx(e, "")
		require.NoError(t, ListCoachesHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("explicit paging forwarded", func(t *testing.T) {
		t.Cleanup(restore)
		listCoaches = func(_ context.Context, _ database.DB, per, page int) ([]store.CoachListRow, error) {
			require.Equal(t, 5, per)
			require.Equal(t, 3, page)
			return []store.CoachListRow{{ID: uuid.New(), Name: "Alice"}}, nil
		}
		ctx, rec := newListCtx(e, "per=5&page=3")
		require.NoError(t, ListCoachesHandler(nil)(ctx))
		require.Contains(t, rec.Body.String(), `"name":"Alice"`)
	})

	t.Run("non integer page", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newListCtx(e, "page=abc")
		requireAPIError(t, ListCoachesHandler(nil)(ctx), http.StatusBadRequest, msgInvalidFields)
	})

	t.Run("zero per", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newListCtx(e, "per=0")
		requireAPIError(t, ListCoachesHandler(nil)(ctx), http.StatusBadRequest, msgInvalidFields)
	})
}

func TestGetCoachHandler(t *testing.T) {
	e := echo.New()
	coachID := uuid.New()
	userID := uuid.New()

	newCtx := func(param string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("coachId")
		ctx.SetParamValues(param)
		return ctx, rec
	}

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newCtx("nope")
		requireAPIError(t, GetCoachHandler(nil)(ctx), http.StatusBadRequest, msgInvalidFields)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getCoachByID = func(context.Context, database.DB, uuid.UUID) (*model.Coach, error) {
			return nil, store.ErrNotFound
		}
		ctx, _ := newCtx(coachID.String())
		requireAPIError(t, GetCoachHandler(nil)(ctx), http.StatusBadRequest, "找不到該教練")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getCoachByID = func(_ context.Context, _ database.DB, id uuid.UUID) (*model.Coach, error) {
			require.Equal(t, coachID, id)
			return &model.Coach{ID: coachID, UserID: userID, ExperienceYears: 5, Description: "d"}, nil
		}
		getUserByID = func(_ context.Context, _ database.DB, id uuid.UUID) (*model.User, error) {
			require.Equal(t, userID, id)
			return &model.User{ID: userID, Name: "Alice", Role: model.RoleCoach}, nil
		}
		ctx, rec := newCtx(coachID.String())
		require.NoError(t, GetCoachHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":"Alice"`)
		require.Contains(t, rec.Body.String(), `"experience_years":5`)
	})
}
