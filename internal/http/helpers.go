package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// DetailResponse is the standard response format for errors and
// confirmations.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// --- Response Helpers ---

// respondNotFound sends a 404 with the given detail message.
func respondNotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, DetailResponse{Detail: detail})
}

// respondUnprocessable sends a 422 for bodies or parameters that could
// not be parsed into the expected types.
func respondUnprocessable(c *gin.Context, detail string) {
	c.JSON(http.StatusUnprocessableEntity, DetailResponse{Detail: detail})
}

// respondInternalError sends a 500 with a generic detail message. The
// underlying error is logged at the call site, never exposed to clients.
func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "internal server error"})
}

// --- Parameter Parsing ---

// parseBookID extracts the book ID from URL parameters.
// Responds with a 422 and returns false when the value is not an
// unsigned integer.
func parseBookID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondUnprocessable(c, "invalid book id: "+idStr)
		return 0, false
	}
	return uint(id), true
}
