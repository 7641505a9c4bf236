package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func errorResponse(status int, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	rr.Header().Set("Content-Type", "application/json")
	rr.WriteHeader(status)
	_, _ = rr.WriteString(body)
	return rr
}

func TestResponseBodyCanBeReadRepeatedly(t *testing.T) {
	Given(t, "an error response for unknown evidence", func(t *testing.T) {
		rr := errorResponse(http.StatusNotFound, `{"error":"not_found","error_description":"evidence not found"}`)

		When(t, "the status and code are asserted", func(t *testing.T) {
			AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")

			Then(t, "the envelope still decodes", func(t *testing.T) {
				body := UnmarshalErrorResponse(t, rr)
				assert.Equal(t, "evidence not found", body["error_description"])
			})

			And(t, "individual fields can be checked in turn", func(t *testing.T) {
				AssertJSONContains(t, rr, "error", "not_found")
				AssertJSONContains(t, rr, "error_description", "evidence not found")
				assert.NotEmpty(t, ReadBody(t, rr))
			})
		})
	})
}
