package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

func TestRecoverer(t *testing.T) {
	logger := httplog.NewLogger("", httplog.Options{Writer: io.Discard})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer)
	r.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	r.Get("/ok", handlePing)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	e := httpexpect.Default(t, server.URL)

	e.GET("/panic").
		Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().
		HasValue("error", "server error occurred")

	e.GET("/ok").
		Expect().
		Status(http.StatusOK).
		Text().IsEqual("pong")
}
