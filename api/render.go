package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"
	gin "github.com/gin-gonic/gin"
)

// renderJSON writes v as a 200 response with a strong ETag over the encoded
// body, answering 304 when If-None-Match already carries it.
func (s *Server) renderJSON(c *gin.Context, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.internalError(c, "encode", err)
		return
	}
	tag := etag(body)
	c.Header("ETag", tag)
	if etagMatches(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func etag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

// etagMatches implements the weak comparison If-None-Match requires.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}
