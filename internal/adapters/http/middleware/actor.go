package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ordo-labs/order-api/internal/core/utils"
)

const actorHeader = "X-Actor"

// Actor stores the caller identity from the X-Actor header on the request
// context. Audit entries attribute changes to it, falling back to "system".
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader(actorHeader); actor != "" {
			ctx := utils.WithActor(c.Request.Context(), actor)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
