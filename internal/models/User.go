package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Role     string `json:"role"` // "ADMIN" or "USER"
}
