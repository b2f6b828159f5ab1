package middleware

import (
	"hr_console/internal/config"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"hr_console/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware requires a valid operator token and tags the request context
// with the operator id.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// report downloads are opened in a new tab and cannot set headers
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("reject operator token", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("operator", claims)
		c.Request = c.Request.WithContext(util.WithOperatorID(c.Request.Context(), claims.OperatorID))
		c.Next()
	}
}

// RoleMiddleware lets through operators holding one of roles. Admins always pass.
func RoleMiddleware(roles ...model.OperatorRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		op := util.GetOperatorFromContext(c)
		if op == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		allowed := op.Role == model.RoleAdmin
		for _, role := range roles {
			if op.Role == role {
				allowed = true
				break
			}
		}

		if !allowed {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
