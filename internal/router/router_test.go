package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcourse/internal/api"
	"fitcourse/internal/cache"
	"fitcourse/internal/database"
	"fitcourse/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type noopPool struct{}

func (noopPool) Submit(worker.Task) {}
func (noopPool) Stop()              {}

func TestSetupRegistersRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopPool{})

	want := []string{
		"GET /healthcheck",
		"POST /api/users/signup",
		"POST /api/users/login",
		"GET /api/users/profile",
		"PUT /api/users/profile",
		"POST /api/admin/coaches/:userId",
		"POST /api/admin/coaches/courses",
		"PUT /api/admin/coaches/courses/:courseId",
		"GET /api/credit-package",
		"POST /api/credit-package",
		"DELETE /api/credit-package/:creditPackageId",
		"GET /api/coaches",
		"GET /api/coaches/:coachId",
		"GET /api/coaches/skill",
		"POST /api/coaches/skill",
		"DELETE /api/coaches/skill/:skillId",
	}

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for _, route := range want {
		require.True(t, got[route], "missing route %s", route)
	}
}

// 未知路徑交由集中式錯誤處理器輸出「無此路由」
func TestUnknownRoute(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopPool{})

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"error"`)
	require.Contains(t, rec.Body.String(), "無此路由")
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()

	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("api error passes through", func(t *testing.T) {
		ctx, rec := newCtx()
		ErrorHandler(api.NewError(http.StatusConflict, "資料重複"), ctx)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"failed"`)
		require.Contains(t, rec.Body.String(), "資料重複")
	})

	t.Run("wrapped api error still unwraps", func(t *testing.T) {
		ctx, rec := newCtx()
		wrapped := echo.NewHTTPError(http.StatusBadRequest).SetInternal(api.NewError(http.StatusBadRequest, "欄位未填寫正確"))
		ErrorHandler(wrapped, ctx)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "欄位未填寫正確")
	})

	t.Run("http error keeps its message", func(t *testing.T) {
		ctx, rec := newCtx()
		ErrorHandler(echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token"), ctx)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"failed"`)
		require.Contains(t, rec.Body.String(), "invalid or missing token")
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		ctx, rec := newCtx()
		ErrorHandler(errors.New("pgx: connection refused"), ctx)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"error"`)
		require.Contains(t, rec.Body.String(), "伺服器錯誤")
		require.NotContains(t, rec.Body.String(), "pgx")
	})

	t.Run("committed response untouched", func(t *testing.T) {
		ctx, rec := newCtx()
		require.NoError(t, ctx.NoContent(http.StatusOK))
		ErrorHandler(errors.New("late"), ctx)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
