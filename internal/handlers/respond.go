package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ridepoolhq/carpool-backend/internal/ledger"
)

// respondError maps core error codes onto their HTTP status. Anything that
// is not a ledger error (storage failures, mostly) is an internal error; the
// mutation behind it was never persisted.
func respondError(c *gin.Context, err error) {
	var le *ledger.Error
	if errors.As(err, &le) {
		c.JSON(le.Status, gin.H{"error": le.Code})
		return
	}
	c.JSON(500, gin.H{"error": "internal_error"})
}
