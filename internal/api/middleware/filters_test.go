package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

func newContainer(logger *zerolog.Logger) *restful.Container {
	ws := new(restful.WebService)
	ws.Path("/t").Produces(restful.MIME_JSON)
	ws.Route(ws.GET("ok").To(func(req *restful.Request, resp *restful.Response) {
		resp.WriteHeaderAndEntity(http.StatusOK, map[string]string{"status": "ok"})
	}))
	ws.Route(ws.GET("panic").To(func(req *restful.Request, resp *restful.Response) {
		panic("boom")
	}))

	container := restful.NewContainer()
	container.Filter(Logger(logger))
	container.Filter(RecoverPanic(logger))
	container.Add(ws)
	return container
}

func TestFilters_LogToInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	container := newContainer(&logger)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/t/ok", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if !strings.Contains(buf.String(), `"path":"/t/ok"`) || !strings.Contains(buf.String(), "request handled") {
		t.Errorf("Expected request log on injected logger, got %q", buf.String())
	}
}

func TestRecoverPanic_WritesErrorResponse(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	container := newContainer(&logger)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/t/panic", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", recorder.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse error response: %v", err)
	}
	if response.Code != http.StatusInternalServerError {
		t.Errorf("Unexpected error response %+v", response)
	}
	if !strings.Contains(buf.String(), "recovered from panic") {
		t.Errorf("Expected panic log on injected logger, got %q", buf.String())
	}
}
