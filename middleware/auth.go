package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"
	"restaurant-api/permissions"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// resolveUser validates the bearer token and loads the caller with group
// memberships, so downstream checks never hit the groups table again.
func resolveUser(c *gin.Context) (*models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("Authorization header required (Bearer <token>)")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}
	var user models.User
	if err := config.DB.Preload("Groups").First(&user, claims.UserID).Error; err != nil {
		return nil, errors.New("Account no longer exists")
	}
	return &user, nil
}

// AuthRequired validates the JWT and injects the caller into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// AuthOptional resolves the caller when a token is present but lets
// anonymous requests through; the permission check decides what anonymous
// callers may do.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		user, err := resolveUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// RequirePermission consults the policy table for the caller's roles, with
// the request method mapped onto a CRUD action.
func RequirePermission(resource permissions.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		action := actionForMethod(c.Request.Method)
		if permissions.Can(permissions.RolesOf(user), resource, action) {
			c.Next()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		}
		c.Abort()
	}
}

func actionForMethod(method string) permissions.Action {
	switch method {
	case http.MethodGet, http.MethodHead:
		return permissions.ActionRead
	case http.MethodPost:
		return permissions.ActionCreate
	case http.MethodPut, http.MethodPatch:
		return permissions.ActionUpdate
	case http.MethodDelete:
		return permissions.ActionDelete
	}
	// Unknown methods never match a policy rule.
	return permissions.Action("")
}

// CurrentUser extracts the resolved caller from context; nil for anonymous.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get("user")
	if !ok {
		return nil
	}
	return val.(*models.User)
}
