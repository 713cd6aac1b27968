package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecobin_backend/internal/config"
	"ecobin_backend/internal/dto"
	"ecobin_backend/internal/middleware"
	"ecobin_backend/internal/models"
	"ecobin_backend/internal/store"
)

func userStore() *store.UserStore {
	return store.NewUserStore(config.DB)
}

// Register creates a user account. The password is bcrypt-hashed before
// it ever reaches the store; the duplicate-email constraint maps to 409.
func Register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: err.Error()})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Age:      input.Age,
		Gender:   input.Gender,
		Role:     input.Role,
	}
	if err := userStore().Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, dto.Envelope{StatusCode: http.StatusConflict, Error: "email already in use"})
			return
		}
		logrus.WithError(err).Error("failed to create user")
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not create user"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode: http.StatusOK,
		Message:    "User saved successfully",
		User:       &user,
	})
}

// Login verifies credentials and issues the access/refresh token pair.
// Bad email and bad password are indistinguishable to the caller.
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: err.Error()})
		return
	}

	user, err := userStore().FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, dto.Envelope{StatusCode: http.StatusUnauthorized, Error: "invalid email or password"})
			return
		}
		logrus.WithError(err).Error("login lookup failed")
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Envelope{StatusCode: http.StatusUnauthorized, Error: "invalid email or password"})
		return
	}

	token, err := middleware.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not generate token"})
		return
	}
	refreshToken, err := middleware.GenerateRefreshToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not generate refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode:     http.StatusOK,
		Message:        "Login successful",
		Token:          token,
		RefreshToken:   refreshToken,
		ExpirationTime: "24Hrs",
		Name:           user.Name,
		Role:           user.Role,
		Age:            user.Age,
		Gender:         user.Gender,
	})
}

// RefreshToken exchanges a still-valid access token for a fresh one. The
// refresh token supplied by the client is echoed back unchanged. An
// invalid or mismatched token is a hard 401, never a silent success.
func RefreshToken(c *gin.Context) {
	var input dto.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: err.Error()})
		return
	}

	email, err := middleware.ExtractSubject(input.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Envelope{StatusCode: http.StatusUnauthorized, Error: "invalid or expired token"})
		return
	}

	user, err := userStore().FindByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Envelope{StatusCode: http.StatusUnauthorized, Error: "invalid or expired token"})
		return
	}

	if !middleware.IsTokenValid(input.Token, user.Email) {
		c.JSON(http.StatusUnauthorized, dto.Envelope{StatusCode: http.StatusUnauthorized, Error: "invalid or expired token"})
		return
	}

	token, err := middleware.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode:     http.StatusOK,
		Message:        "Token refreshed successfully",
		Token:          token,
		RefreshToken:   input.Token,
		ExpirationTime: "24Hrs",
	})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
