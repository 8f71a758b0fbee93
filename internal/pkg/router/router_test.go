package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/bitekit/internal/pkg/config"
	"github.com/shandysiswandi/bitekit/internal/pkg/goerror"
	"github.com/shandysiswandi/bitekit/internal/pkg/instrument"
	"github.com/shandysiswandi/bitekit/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	return NewRouter(Config{
		Config:     cfg,
		UUID:       fixedID("generated-cid"),
		Instrument: instrument.NewNoop(),
	})
}

func serve(r http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

type echoResponse struct {
	Value string `json:"value"`
}

func (echoResponse) Message() string { return "echoed" }

func TestRouter_Builtin(t *testing.T) {
	r := newTestRouter(t, "app: {}")

	rec := serve(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, decode(t, rec)["data"])

	rec = serve(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to API bitekit", decode(t, rec)["message"])

	rec = serve(r, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "endpoint not found", decode(t, rec)["message"])

	rec = serve(r, http.MethodDelete, "/health", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Endpoint(t *testing.T) {
	r := newTestRouter(t, "app: {}")

	r.POST("/echo", func(req *Request) (any, error) {
		var body struct {
			Value string `json:"value"`
		}
		if err := req.DecodeBody(&body); err != nil {
			return nil, err
		}
		return echoResponse(body), nil
	})
	r.GET("/fail/:kind", func(req *Request) (any, error) {
		switch req.GetParam("kind") {
		case "fields":
			return nil, goerror.NewInvalidInput(nil, "text", "text is not valid base64")
		case "validator":
			return nil, goerror.NewInvalidInput(validator.V10ValidationError{"bytes": "bytes is required"})
		case "panic":
			panic("boom")
		default:
			return nil, errors.New("plain")
		}
	})

	t.Run("success envelope", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/echo", `{"value":"hi"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		body := decode(t, rec)
		assert.Equal(t, "echoed", body["message"])
		assert.Equal(t, map[string]any{"value": "hi"}, body["data"])
	})

	t.Run("malformed body", func(t *testing.T) {
		for _, payload := range []string{`{"value":`, `{"other":1}`, `{"value":"a"} {}`} {
			rec := serve(r, http.MethodPost, "/echo", payload, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
			assert.Equal(t, "Invalid request body", decode(t, rec)["message"])
		}
	})

	t.Run("error fields", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/fail/fields", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, map[string]any{"text": "text is not valid base64"}, decode(t, rec)["error"])
	})

	t.Run("validator fields", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/fail/validator", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, map[string]any{"bytes": "bytes is required"}, decode(t, rec)["error"])
	})

	t.Run("unclassified error", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/fail/plain", "", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decode(t, rec)["message"])
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := serve(r, http.MethodGet, "/fail/panic", "", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decode(t, rec)["message"])
	})
}

func TestRouter_CorrelationID(t *testing.T) {
	r := newTestRouter(t, "app: {}")

	var seen string
	r.GET("/cid", func(req *Request) (any, error) {
		seen = instrument.GetCorrelationID(req.Context())
		return nil, nil
	})

	rec := serve(r, http.MethodGet, "/cid", "", nil)
	assert.Equal(t, "generated-cid", rec.Header().Get(HeaderCorrelationID))
	assert.Equal(t, "generated-cid", seen)

	rec = serve(r, http.MethodGet, "/cid", "", map[string]string{HeaderRequestID: " from-proxy "})
	assert.Equal(t, "from-proxy", rec.Header().Get(HeaderCorrelationID))
	assert.Equal(t, "from-proxy", seen)

	long := strings.Repeat("x", 200)
	rec = serve(r, http.MethodGet, "/cid", "", map[string]string{HeaderCorrelationID: long})
	assert.Len(t, rec.Header().Get(HeaderCorrelationID), maxCorrelationIDLen)

	rec = serve(r, http.MethodGet, "/cid", "", map[string]string{
		HeaderCorrelationID: "bad\x01id",
		HeaderRequestID:     "fallback",
	})
	assert.Equal(t, "fallback", rec.Header().Get(HeaderCorrelationID))
}

func TestRouter_Maintenance(t *testing.T) {
	r := newTestRouter(t, `
app:
  maintenance:
    endpoints: "/blocked/:id"
`)
	r.GET("/blocked/:id", func(*Request) (any, error) { return echoResponse{Value: "x"}, nil })
	r.GET("/open", func(*Request) (any, error) { return echoResponse{Value: "x"}, nil })

	rec := serve(r, http.MethodGet, "/blocked/1", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "service is under maintenance", decode(t, rec)["message"])

	rec = serve(r, http.MethodGet, "/open", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequest_GetQueryInt(t *testing.T) {
	req := &Request{Request: httptest.NewRequest(http.MethodGet, "/?bytes=16&bad=x&neg=-3", nil)}

	v, err := req.GetQueryInt("bytes", 8)
	require.NoError(t, err)
	assert.Equal(t, 16, v)

	v, err = req.GetQueryInt("missing", 8)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	v, err = req.GetQueryInt("neg", 8)
	require.NoError(t, err)
	assert.Equal(t, -3, v)

	_, err = req.GetQueryInt("bad", 8)
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidFormat, gerr.Code())
}

func TestRequest_DecodeBody_SizeLimit(t *testing.T) {
	decodeBody := func(body string) error {
		req := &Request{Request: httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))}
		var dst struct {
			Input string `json:"input"`
		}
		return req.DecodeBody(&dst)
	}

	doc := `{"input":"abc"}`
	padded := doc + strings.Repeat(" ", maxBodyBytes-len(doc))

	t.Run("document padded to the limit", func(t *testing.T) {
		assert.NoError(t, decodeBody(padded))
	})

	t.Run("trailing bytes past the limit", func(t *testing.T) {
		err := decodeBody(padded + "garbage")
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInvalidFormat, gerr.Code())
	})

	t.Run("document over the limit", func(t *testing.T) {
		big := `{"input":"` + strings.Repeat("a", maxBodyBytes) + `"}`
		var gerr *goerror.Error
		require.ErrorAs(t, decodeBody(big), &gerr)
		assert.Equal(t, goerror.CodeInvalidFormat, gerr.Code())
	})
}

func TestRouter_OversizeBody(t *testing.T) {
	r := newTestRouter(t, "app: {}")
	r.POST("/echo", func(req *Request) (any, error) {
		var body struct {
			Value string `json:"value"`
		}
		if err := req.DecodeBody(&body); err != nil {
			return nil, err
		}
		return echoResponse(body), nil
	})

	doc := `{"value":"hi"}`
	payload := doc + strings.Repeat(" ", maxBodyBytes-len(doc)) + "garbage"
	rec := serve(r, http.MethodPost, "/echo", payload, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "true client ip", headers: map[string]string{"True-Client-IP": "10.0.0.1"}, remote: "1.1.1.1:80", want: "10.0.0.1"},
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"}, remote: "1.1.1.1:80", want: "10.0.0.2"},
		{name: "invalid header falls back", headers: map[string]string{"X-Real-IP": "nope"}, remote: "1.1.1.1:80", want: "1.1.1.1"},
		{name: "nothing usable", remote: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, realIP(req))
		})
	}
}

func TestLoggableBody(t *testing.T) {
	keys := instrument.BuildMaskKeys([]string{"text"})

	assert.Nil(t, loggableBody(nil, false, keys))
	assert.Equal(t, map[string]any{"text": instrument.MaskValue}, loggableBody([]byte(`{"text":"abc"}`), false, keys))
	assert.Equal(t, "plain", loggableBody([]byte("plain"), false, keys))
	assert.Equal(t, "<binary body omitted>", loggableBody([]byte{0xff, 0xfe}, false, keys))
	assert.Equal(t, map[string]any{"body": "plain", "truncated": true}, loggableBody([]byte("plain"), true, keys))
}
