package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
	"gorm.io/gorm"
)

// Auth handles role based authorization on top of JWTAuthMiddleware. Roles are read
// from the database so demotion and deactivation apply to tokens already issued.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

func (a *Auth) requireRole(check func(*user.User) bool, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		usr, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
				return
			}
			logger.Log.Error().Err(err).Uint("user_id", claims.UserID).Msg("failed to resolve caller")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
			return
		}
		if !usr.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Account disabled"})
			return
		}
		if !check(&usr) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: msg})
			return
		}
		c.Next()
	}
}

// Admin allows only admins.
func (a *Auth) Admin() gin.HandlerFunc {
	return a.requireRole((*user.User).IsAdmin, "Admin only")
}

// Elevated allows managers and admins.
func (a *Auth) Elevated() gin.HandlerFunc {
	return a.requireRole((*user.User).IsElevated, "Manager or admin only")
}

// LoggingMiddleware writes one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		ev := logger.Log.Info()
		switch {
		case status >= 500:
			ev = logger.Log.Error()
		case status >= 400:
			ev = logger.Log.Warn()
		}
		if uid, err := utils.GetUserIDFromContext(c); err == nil {
			ev = ev.Uint("user_id", uid)
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// AllowOrigin accepts configured origins; outside production any localhost port is allowed too.
func AllowOrigin(origin string) bool {
	for _, o := range config.CORSOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	if !config.IsProduction {
		return strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
	}
	return false
}

func CORSMiddleware() gin.HandlerFunc {
	corsHandler := cors.New(cors.Config{
		AllowOriginFunc:  AllowOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
