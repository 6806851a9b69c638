package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vadimbarashkov/shorturl/internal/entity"

	httpMock "github.com/vadimbarashkov/shorturl/mocks/http"
)

type HandlersTestSuite struct {
	suite.Suite
	logger         *httplog.Logger
	urlUseCaseMock *httpMock.MockUrlUseCase
	server         *httptest.Server
	e              *httpexpect.Expect
}

func (suite *HandlersTestSuite) SetupSuite() {
	suite.logger = httplog.NewLogger("", httplog.Options{Writer: io.Discard})
}

func (suite *HandlersTestSuite) SetupSubTest() {
	suite.urlUseCaseMock = httpMock.NewMockUrlUseCase(suite.T())

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_requests_total",
		Help: "Test counter.",
	}))

	router := NewRouter(suite.logger, reg, 5*time.Second, suite.urlUseCaseMock)
	suite.server = httptest.NewServer(router)
	suite.T().Cleanup(func() {
		suite.server.Close()
	})

	suite.e = httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  suite.server.URL,
		Reporter: httpexpect.NewAssertReporter(suite.T()),
		Client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

func (suite *HandlersTestSuite) TearDownSubTest() {
	suite.urlUseCaseMock.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestPing() {
	suite.Run("success", func() {
		suite.e.GET("/ping").
			Expect().
			Status(http.StatusOK).
			Text().IsEqual("pong")
	})
}

func (suite *HandlersTestSuite) TestHello() {
	suite.Run("success", func() {
		suite.e.GET("/api/hello").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{"greeting": "hello API"})
	})
}

func (suite *HandlersTestSuite) TestMetrics() {
	suite.Run("success", func() {
		suite.e.GET("/metrics").
			Expect().
			Status(http.StatusOK).
			Body().Contains("test_requests_total")
	})
}

func (suite *HandlersTestSuite) TestSwagger() {
	suite.Run("document", func() {
		suite.e.GET("/docs/swagger.yml").
			Expect().
			Status(http.StatusOK).
			Body().Contains("/api/shorturl/new")
	})
}

func (suite *HandlersTestSuite) TestShortenURL() {
	const path = "/api/shorturl/new"

	suite.Run("empty request body", func() {
		suite.e.POST(path).
			WithHeader("Content-Type", "application/json").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "empty request body")
	})

	suite.Run("invalid request body", func() {
		suite.e.POST(path).
			WithJSON("invalid body").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "invalid request body")
	})

	suite.Run("wrong field type", func() {
		suite.e.POST(path).
			WithJSON(map[string]any{"url": 42}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "invalid request body")
	})

	suite.Run("missing url", func() {
		suite.e.POST(path).
			WithJSON(map[string]string{}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("error", "invalid URL")
	})

	suite.Run("invalid url", func() {
		suite.urlUseCaseMock.
			On("ShortenURL", mock.Anything, "not-a-url").
			Once().
			Return(nil, fmt.Errorf("usecase: %w", entity.ErrInvalidURL))

		suite.e.POST(path).
			WithJSON(map[string]string{"url": "not-a-url"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{"error": "invalid URL"})
	})

	suite.Run("invalid hostname", func() {
		suite.urlUseCaseMock.
			On("ShortenURL", mock.Anything, "http://this-host-should-never-exist.invalid").
			Once().
			Return(nil, fmt.Errorf("usecase: %w", entity.ErrInvalidHostname))

		suite.e.POST(path).
			WithJSON(map[string]string{"url": "http://this-host-should-never-exist.invalid"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{"error": "invalid Hostname"})
	})

	suite.Run("server error", func() {
		suite.urlUseCaseMock.
			On("ShortenURL", mock.Anything, "https://example.com/a").
			Once().
			Return(nil, errors.New("unknown error"))

		suite.e.POST(path).
			WithJSON(map[string]string{"url": "https://example.com/a"}).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("error", "server error occurred")
	})

	suite.Run("success", func() {
		suite.urlUseCaseMock.
			On("ShortenURL", mock.Anything, "https://example.com/a").
			Once().
			Return(&entity.URL{
				OriginalURL: "https://example.com/a",
				ShortCode:   1,
			}, nil)

		suite.e.POST(path).
			WithJSON(map[string]string{"url": "https://example.com/a"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{
				"original_url": "https://example.com/a",
				"short_url":    1,
			})
	})

	suite.Run("form body", func() {
		suite.urlUseCaseMock.
			On("ShortenURL", mock.Anything, "https://example.com/a").
			Once().
			Return(&entity.URL{
				OriginalURL: "https://example.com/a",
				ShortCode:   1,
			}, nil)

		suite.e.POST(path).
			WithFormField("url", "https://example.com/a").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("short_url", 1)
	})
}

func (suite *HandlersTestSuite) TestResolveShortCode() {
	const path = "/api/shorturl/%s"

	suite.Run("url not found", func() {
		suite.urlUseCaseMock.
			On("ResolveShortCode", mock.Anything, int64(999999)).
			Once().
			Return(nil, entity.ErrURLNotFound)

		suite.e.GET(fmt.Sprintf(path, "999999")).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{"error": "No short url found for given input"})
	})

	suite.Run("non-integer code", func() {
		suite.e.GET(fmt.Sprintf(path, "abc")).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("error", "No short url found for given input")
	})

	suite.Run("server error", func() {
		suite.urlUseCaseMock.
			On("ResolveShortCode", mock.Anything, int64(1)).
			Once().
			Return(nil, errors.New("unknown error"))

		suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("error", "server error occurred")
	})

	suite.Run("success", func() {
		suite.urlUseCaseMock.
			On("ResolveShortCode", mock.Anything, int64(1)).
			Once().
			Return(&entity.URL{
				OriginalURL: "https://example.com/a",
				ShortCode:   1,
			}, nil)

		suite.e.GET(fmt.Sprintf(path, "1")).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("https://example.com/a")
	})
}

func TestURLHandler(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
