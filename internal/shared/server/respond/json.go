package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON serializes payload with the given status code. Kept as the
// single success path so handlers never call c.JSON directly.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK is JSON with http.StatusOK.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
