package services

import (
	"errors"

	"github.com/IMxMaYur/health-copilot/config"
	"github.com/IMxMaYur/health-copilot/models"
)

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"created_at": user.CreatedAt,
	}, nil
}
