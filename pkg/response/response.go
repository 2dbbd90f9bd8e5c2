package response

import (
	"github.com/gin-gonic/gin"

	"github.com/sessionworks/go-auth-api/pkg/validation"
)

// The wire format is fixed by the upstream API contract: flat bodies,
// a "message" string for outcomes and an "errors" list for validation
// failures.

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func ValidationFailed(c *gin.Context, status int, errs []validation.FieldError) {
	c.JSON(status, gin.H{"errors": errs})
}
