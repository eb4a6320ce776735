package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core/feed"
)

func Test_feedApi(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "empty feed", method: http.MethodGet, path: "/api/feed", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{
			name: "missing text", method: http.MethodPost, path: "/api/feed", body: []byte(`{"user": "t1"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, missing("text")),
		},
		{
			name: "missing all", method: http.MethodPost, path: "/api/feed", body: []byte(`{}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, missing("user", "text")),
		},
	})

	var resp FeedResponse
	for _, p := range []feed.NewPost{{User: "t1", Text: "Welcome!"}, {User: "s1", Text: "  Thanks \n"}} {
		rec := do(t, app, http.MethodPost, "/api/feed", p)
		require.Equal(t, http.StatusOK, rec.Code)
		unmarshall(t, rec, &resp)
	}
	assert.True(t, resp.Success)
	require.Len(t, resp.ClassFeed, 2)
	assert.Equal(t, "t1", resp.ClassFeed[0].User)
	assert.Equal(t, "Welcome!", resp.ClassFeed[0].Text)
	assert.Equal(t, "s1", resp.ClassFeed[1].User)
	assert.Equal(t, "  Thanks \n", resp.ClassFeed[1].Text)

	rec := do(t, app, http.MethodGet, "/api/feed")
	var list []feed.Post
	unmarshall(t, rec, &list)
	assert.Equal(t, resp.ClassFeed, list)
}
