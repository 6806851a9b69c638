package http

import (
	"github.com/vadimbarashkov/shorturl/internal/entity"
)

// shortenRequest is the body of a shorten request, sent as JSON or as a form.
type shortenRequest struct {
	URL string `json:"url" form:"url" validate:"required"`
}

// shortenResponse is the mapping returned for a shortened URL.
type shortenResponse struct {
	OriginalURL string `json:"original_url"`
	ShortURL    int64  `json:"short_url"`
}

func toShortenResponse(url *entity.URL) shortenResponse {
	return shortenResponse{
		OriginalURL: url.OriginalURL,
		ShortURL:    url.ShortCode,
	}
}

type helloResponse struct {
	Greeting string `json:"greeting"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse   = errorResponse{Error: "empty request body"}
	invalidRequestBodyResponse = errorResponse{Error: "invalid request body"}
	invalidURLResponse         = errorResponse{Error: "invalid URL"}
	invalidHostnameResponse    = errorResponse{Error: "invalid Hostname"}
	urlNotFoundResponse        = errorResponse{Error: "No short url found for given input"}
	serverErrorResponse        = errorResponse{Error: "server error occurred"}
)
