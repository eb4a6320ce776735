package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classwork"
	"github.com/trezcool/darasa/core/feed"
	"github.com/trezcool/darasa/core/library"
	"github.com/trezcool/darasa/core/upload"
	"github.com/trezcool/darasa/core/user"
	eventsvc "github.com/trezcool/darasa/services/events"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
	filestore "github.com/trezcool/darasa/storage/files"
	"github.com/trezcool/darasa/testutil"
)

const testScore = 77

type testApp struct {
	Server
	conf   *core.Config
	events *eventsvc.LogPublisher
}

func setup(t *testing.T, configure ...func(conf *core.Config)) testApp {
	conf := testutil.NewConfig(t)
	for _, fn := range configure {
		fn(conf)
	}

	db, err := inmemdb.Open()
	require.NoError(t, err)
	store, err := filestore.NewLocalStore(conf.Upload.Dir)
	require.NoError(t, err)

	logger := testutil.NewLogger()
	events := eventsvc.NewLogPublisher(nil)
	translator := core.NewTranslator()

	srv := NewServer(ServerDeps{
		Conf:         conf,
		Logger:       logger,
		UserSvc:      user.NewService(inmemdb.NewUserRepository(db), events, logger),
		ClassworkSvc: classwork.NewService(inmemdb.NewClassworkRepository(db), testutil.FixedScorer(testScore), events, logger),
		FeedSvc:      feed.NewService(inmemdb.NewFeedRepository(db), events, logger),
		LibrarySvc:   library.NewService(inmemdb.NewLibraryRepository(db), events, logger),
		UploadSvc:    upload.NewService(store, events, logger),
		Validate:     core.NewValidator(translator),
		Translator:   translator,
	})
	return testApp{Server: srv, conf: conf, events: events}
}

type httpErr struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

// do serves a JSON request; obj (if any) is used as body.
func do(t *testing.T, app http.Handler, method, path string, obj ...interface{}) *httptest.ResponseRecorder {
	var data [][]byte
	if len(obj) > 0 {
		data = append(data, marshallObj(t, obj[0]))
	}
	req, rec := newRequest(method, path, data...)
	app.ServeHTTP(rec, req)
	return rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func unmarshall(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarshall(%s) failed: %v", rec.Body.String(), err)
	}
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code, "code")
	assert.JSONEq(t, string(tt.wantData), rec.Body.String(), "data")
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func missing(fields ...string) httpErr {
	herr := httpErr{Fields: make(map[string]string, len(fields))}
	for i, f := range fields {
		if i == 0 {
			herr.Error = "missing " + f
		} else {
			herr.Error += ", " + f
		}
		herr.Fields[f] = "this field is required"
	}
	return herr
}
