package echoapi_test

import (
	"net/http"
	"testing"

	. "github.com/trezcool/darasa/apps/api/echo"
)

func Test_libraryApi(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "empty library", method: http.MethodGet, path: "/api/library", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{
			name: "first purchase", method: http.MethodPost, path: "/api/buy",
			wantCode: http.StatusOK, wantData: marshallObj(t, LibraryResponse{Success: true, Library: []string{"Digital Resource 0"}}),
		},
		{
			name: "body is ignored", method: http.MethodPost, path: "/api/buy", body: []byte(`{"item": "Encyclopedia", "price": 10}`),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, LibraryResponse{Success: true, Library: []string{"Digital Resource 0", "Digital Resource 1"}}),
		},
		{
			name: "list", method: http.MethodGet, path: "/api/library",
			wantCode: http.StatusOK, wantData: marshallObj(t, []string{"Digital Resource 0", "Digital Resource 1"}),
		},
	})
}
