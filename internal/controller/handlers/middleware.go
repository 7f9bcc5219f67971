package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/edudesk/attendance_service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const actorContextKey = "actor"

// AuthMiddleware извлекает Actor из Bearer-токена. Токены выпускает общий
// auth-сервис платформы, здесь мы их только проверяем
func AuthMiddleware(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			logger.Debug("Rejected JWT", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		userID, okID := claims["user_id"].(float64)
		role, okRole := claims["role"].(string)
		if !okID || !okRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		switch model.Role(role) {
		case model.RoleAdmin, model.RoleTeacher, model.RoleStudent:
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown role"})
			return
		}

		c.Set(actorContextKey, model.Actor{
			UserID: int64(userID),
			Role:   model.Role(role),
		})

		c.Next()
	}
}

// actorFromContext достаёт Actor, положенный AuthMiddleware
func actorFromContext(c *gin.Context) (model.Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return model.Actor{}, false
	}

	actor, ok := value.(model.Actor)
	return actor, ok
}
