package helpers

import (
	"net/http"

	"github.com/isometry/delay-responder/internal/models"
)

const contentTypePlain = "text/plain; charset=utf-8"

// RespondHTTP writes a models.Response to rw as plain text.
// When err is set and the response carries no body, the error message becomes the body.
func RespondHTTP(response models.Response, err error, rw http.ResponseWriter) {
	body := response.Body
	if body == "" && err != nil {
		body = err.Error() + "\n"
	}

	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	if rw.Header().Get("Content-Type") == "" && body != "" {
		rw.Header().Set("Content-Type", contentTypePlain)
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write([]byte(body))
}
