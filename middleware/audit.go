package middleware

import (
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/gin-gonic/gin"
)

const clientIPKey = "client_ip"

// AuditMiddleware extracts and stores IP address for audit logging
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientIPKey, getClientIP(c))
		c.Next()
	}
}

// getClientIP defers to gin, which only honours X-Forwarded-For and
// X-Real-IP when the peer is one of the engine's trusted proxies.
func getClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// GetIPFromContext retrieves IP address from gin context
func GetIPFromContext(c *gin.Context) string {
	if ip, exists := c.Get(clientIPKey); exists {
		if ipStr, ok := ip.(string); ok {
			return ipStr
		}
	}
	return getClientIP(c)
}

// OriginFromContext collects what the audit log records about the caller.
func OriginFromContext(c *gin.Context) auditlog.Origin {
	return auditlog.Origin{
		IP:        GetIPFromContext(c),
		RequestID: GetRequestID(c),
	}
}
