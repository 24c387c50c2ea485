package middleware

import (
	"net/http"
	"strings"
	"time"

	"pizzeria-api/config"
	"pizzeria-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller, derived from the bearer credential on
// every request. Handlers never look at the raw claims or the storage
// representation of the user.
type Identity struct {
	ID   uint
	Role models.UserRole
}

func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

type Claims struct {
	UserID uint            `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

const identityKey = "identity"

// GenerateToken creates a signed JWT for a given user, valid for 24 hours.
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the bearer token and injects the caller Identity
// into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(identityKey, Identity{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// AdminRequired enforces the admin role. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Admins only."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the caller identity set by AuthRequired.
func GetIdentity(c *gin.Context) Identity {
	val, _ := c.Get(identityKey)
	id, _ := val.(Identity)
	return id
}
