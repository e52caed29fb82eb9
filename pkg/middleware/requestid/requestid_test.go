package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(header string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		seen = Value(c)
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(headerKey, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seen
}

func TestMiddlewareKeepsClientID(t *testing.T) {
	w, seen := serve("abc-123")
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(headerKey))
}

func TestMiddlewareGeneratesID(t *testing.T) {
	_, seen := serve("")
	assert.Len(t, seen, 36)

	_, replaced := serve(strings.Repeat("x", 100))
	assert.Len(t, replaced, 36)
}

func TestMiddlewareReplacesUnsafeClientID(t *testing.T) {
	for _, header := range []string{"abc 123", "id\"; drop", "ääkkönen", " padded "} {
		w, seen := serve(header)
		assert.Len(t, seen, 36, header)
		assert.NotEqual(t, header, seen)
		assert.Equal(t, seen, w.Header().Get(headerKey))
	}
}
