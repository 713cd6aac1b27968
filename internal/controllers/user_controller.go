package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"ecobin_backend/internal/dto"
	"ecobin_backend/internal/store"
)

// GetAllUsers lists every account. An empty table is reported as 404,
// which is what the admin dashboard expects.
func GetAllUsers(c *gin.Context) {
	users, err := userStore().List()
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not fetch users"})
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, dto.Envelope{StatusCode: http.StatusNotFound, Message: "No users found"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode: http.StatusOK,
		Message:    "Successful",
		UserList:   users,
	})
}

func GetUserByID(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: "invalid user id"})
		return
	}

	user, err := userStore().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Envelope{StatusCode: http.StatusNotFound, Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not fetch user"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode: http.StatusOK,
		Message:    "User found successfully",
		User:       user,
	})
}

// UpdateUser replaces every scalar field of the account. The password is
// only re-hashed and replaced when a non-empty one is supplied.
func UpdateUser(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: "invalid user id"})
		return
	}

	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: err.Error()})
		return
	}

	users := userStore()
	user, err := users.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Envelope{StatusCode: http.StatusNotFound, Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not fetch user"})
		return
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Age = input.Age
	user.Gender = input.Gender
	user.Role = input.Role
	if input.Password != "" {
		hashed, err := hashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not hash password"})
			return
		}
		user.Password = hashed
	}

	if err := users.Save(user); err != nil {
		logrus.WithError(err).Error("failed to update user")
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not update user"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode: http.StatusOK,
		Message:    "User updated successfully",
		User:       user,
	})
}

func DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{StatusCode: http.StatusBadRequest, Error: "invalid user id"})
		return
	}

	if err := userStore().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Envelope{StatusCode: http.StatusNotFound, Message: "User not found for deletion"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not delete user"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{StatusCode: http.StatusOK, Message: "User deleted successfully"})
}

// GetMyProfile looks up the caller's own account. The identity comes
// from the validated token claims set by RequireAuth, never from the
// request body.
func GetMyProfile(c *gin.Context) {
	emailIfc, exists := c.Get("email")
	email, ok := emailIfc.(string)
	if !exists || !ok || email == "" {
		c.JSON(http.StatusUnauthorized, dto.Envelope{StatusCode: http.StatusUnauthorized, Error: "no authenticated identity"})
		return
	}

	user, err := userStore().FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Envelope{StatusCode: http.StatusNotFound, Message: "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Envelope{StatusCode: http.StatusInternalServerError, Error: "could not fetch profile"})
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		StatusCode: http.StatusOK,
		Message:    "Successful",
		User:       user,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
