package security

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	levelUser  = 1
	levelAdmin = 2
)

var roleHierarchy = map[string]int{
	"user":  levelUser,
	"admin": levelAdmin,
}

// Identity is the resolved caller passed explicitly into core operations
// instead of being read from ambient state.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// JWTMiddleware validates the bearer token and stores the resolved
// identity claims on the request context.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secret(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userID", claims["userID"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// IdentityFromContext rebuilds the caller identity set by JWTMiddleware.
func IdentityFromContext(c *gin.Context) (Identity, error) {
	rawID, ok := c.Get("userID")
	if !ok {
		return Identity{}, fmt.Errorf("no identity on request context")
	}
	idStr, ok := rawID.(string)
	if !ok {
		return Identity{}, fmt.Errorf("userID claim is not a string")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}, fmt.Errorf("userID claim is not a valid id: %w", err)
	}

	role := "user"
	if rawRole, ok := c.Get("role"); ok {
		if s, ok := rawRole.(string); ok {
			role = s
		}
	}

	return Identity{UserID: userID, Role: role}, nil
}

// Authorize ensures the caller's role meets the required level.
func Authorize(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}
		userRole, ok := role.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid role format"})
			c.Abort()
			return
		}

		requiredLevel, requiredExists := roleHierarchy[requiredRole]
		userLevel, userExists := roleHierarchy[userRole]

		if !requiredExists || !userExists || userLevel < requiredLevel {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAllowed reports whether the context role meets the required level.
func IsAllowed(c *gin.Context, requiredRole string) bool {
	role, exists := c.Get("role")
	if !exists {
		return false
	}
	userRole, ok := role.(string)
	if !ok {
		return false
	}
	requiredLevel, requiredExists := roleHierarchy[requiredRole]
	userLevel, userExists := roleHierarchy[userRole]
	return requiredExists && userExists && userLevel >= requiredLevel
}
