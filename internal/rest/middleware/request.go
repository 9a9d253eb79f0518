package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/lunaria/lunaria/internal/types"
)

// RequestIDMiddleware attaches a request id to the context and echoes it back
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	ctx := types.WithRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
