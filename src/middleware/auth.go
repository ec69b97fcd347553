package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/debreiyesus/church-server/src/models"
)

// JWTSecret should be loaded from environment via config
var JWTSecret string

// SetJWTSecret initializes the JWT secret from config
func SetJWTSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	JWTSecret = secret
	return nil
}

// AdminClaims represents JWT claims for admin users
type AdminClaims struct {
	AdminID      int    `json:"admin_id"`
	Username     string `json:"username"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	jwt.RegisteredClaims
}

// GenerateAdminToken creates a 24h JWT token for an admin
func GenerateAdminToken(adminID int, username string, isSuperAdmin bool) (string, error) {
	claims := AdminClaims{
		AdminID:      adminID,
		Username:     username,
		IsSuperAdmin: isSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "church-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecret))
}

// ValidateAdminToken verifies a JWT token and returns its claims
func ValidateAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// AdminAuthMiddleware requires a valid bearer token. A missing token is 401;
// an expired or malformed one is 403, before any handler logic runs.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			c.Abort()
			return
		}

		claims, err := ValidateAdminToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Set("is_super_admin", claims.IsSuperAdmin)
		c.Next()
	}
}

// RequireSuperAdmin rejects requests from non-super admins.
// Must run after AdminAuthMiddleware.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isSuper, exists := c.Get("is_super_admin")
		if !exists || !isSuper.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "super admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFromContext builds the acting admin's identity from request context
func ActorFromContext(c *gin.Context) models.Actor {
	actor := models.Actor{IP: c.ClientIP()}
	if id, ok := c.Get("admin_id"); ok {
		actor.ID = id.(int)
	}
	if username, ok := c.Get("username"); ok {
		actor.Username = username.(string)
	}
	return actor
}
