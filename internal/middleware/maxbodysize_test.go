package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-tracker/internal/middleware"
)

// drainHandler reads the whole body and reports 413 when MaxBytesReader trips.
var drainHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, err := io.ReadAll(r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySize(t *testing.T) {
	const limit = 64

	tests := []struct {
		name          string
		size          int
		contentLength int64
		want          int
	}{
		{name: "within limit", size: 32, contentLength: 32, want: http.StatusOK},
		{name: "exactly at limit", size: limit, contentLength: limit, want: http.StatusOK},
		{name: "declared length too large", size: 128, contentLength: 128, want: http.StatusRequestEntityTooLarge},
		{name: "unknown length streams past limit", size: 128, contentLength: -1, want: http.StatusRequestEntityTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewMaxBodySizeHandler(limit)(drainHandler)

			req := httptest.NewRequest(http.MethodPut, "/document", strings.NewReader(strings.Repeat("x", tc.size)))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
