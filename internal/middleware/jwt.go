package middleware

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtOnce         sync.Once
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
)

// initJWT reads the signing settings on first use rather than at
// package init, so a JWT_SECRET supplied only through .env (loaded by
// config.InitDB) is still honored.
func initJWT() {
	jwtOnce.Do(func() {
		secret, accessTokenTTL, refreshTokenTTL = loadJWTConfig()
	})
}

func loadJWTConfig() ([]byte, time.Duration, time.Duration) {
	return []byte(getJWTSecret()),
		time.Duration(getEnvHours("ACCESS_TOKEN_TTL_HOURS", 24)) * time.Hour,
		time.Duration(getEnvHours("REFRESH_TOKEN_TTL_HOURS", 168)) * time.Hour
}

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

func getEnvHours(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

// GenerateAccessToken issues a short-lived token whose subject is the
// user's email. The role claim drives route-level authorization.
func GenerateAccessToken(email, role string) (string, error) {
	initJWT()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateRefreshToken issues a longer-lived token carrying only the
// subject and expiry.
func GenerateRefreshToken(email string) (string, error) {
	initJWT()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(refreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ExtractSubject returns the email a token was issued for. Signature and
// expiry are checked as part of parsing, so a malformed, mis-signed or
// expired token fails here rather than being half-trusted.
func ExtractSubject(tokenStr string) (string, error) {
	initJWT()
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

// IsTokenValid reports whether the token is well-signed, unexpired and
// was issued for the given email. Any parse failure counts as invalid.
func IsTokenValid(tokenStr, email string) bool {
	sub, err := ExtractSubject(tokenStr)
	if err != nil {
		return false
	}
	return sub == email
}

// RequireAuth ensures a valid JWT is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		initJWT()
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Store claims in context for downstream handlers
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("email", claims["sub"])
			c.Set("role", claims["role"])
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Next()
	}
}

// RequireAuthWithRole ensures the JWT is valid and the user has a specific role
func RequireAuthWithRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// First ensure basic auth
		req := RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		// Check role
		roleIfc, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			return
		}
		if role, ok := roleIfc.(string); !ok || role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
