package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ownerKeyCtx    = "ownerKey"
	ownerKeyHeader = "X-Owner-Key"
)

// OwnerKey stores the caller's owner key from the X-Owner-Key header, if any.
// Identity itself is established upstream by the external identity provider.
func OwnerKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if owner := strings.TrimSpace(c.GetHeader(ownerKeyHeader)); owner != "" {
			c.Set(ownerKeyCtx, owner)
		}
		c.Next()
	}
}

// OwnerKeyFromContext fetches the owner key set by the OwnerKey middleware.
func OwnerKeyFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(ownerKeyCtx)
	if owner, ok := val.(string); ok {
		return owner
	}
	return ""
}
