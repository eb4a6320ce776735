package echoapi_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	appfs "github.com/trezcool/darasa/fs"
)

func TestServer_home(t *testing.T) {
	app := setup(t)
	index, err := appfs.FS.ReadFile(appfs.IndexPath)
	require.NoError(t, err)

	for _, path := range []string{"/", "/login", "/student/dashboard", "/parent/results?student=s1"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
			assert.Equal(t, string(index), rec.Body.String())
		})
	}
}

func TestServer_homeOverride(t *testing.T) {
	index := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(index, []byte("<html>custom</html>"), 0o644))
	app := setup(t, func(conf *core.Config) { conf.WebIndex = index })

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>custom</html>", rec.Body.String())
}

func TestServer_routing(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "trailing slash", method: http.MethodGet, path: "/api/exams/", wantCode: http.StatusOK, wantData: []byte(`[]`)},
	})

	t.Run("cors", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/library")
		req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}
