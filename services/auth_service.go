package services

import (
	"context"
	"errors"
	"time"

	"github.com/IMxMaYur/health-copilot/config"
	"github.com/IMxMaYur/health-copilot/models"
	"github.com/IMxMaYur/health-copilot/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return user, errors.New("user not found")
	}
	return user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	user, err := FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// SignOut denylists the token until it would have expired on its own;
// the auth middleware refuses denylisted tokens from then on.
func SignOut(ctx context.Context, tokenString string) error {
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // already expired
	}
	if config.Redis == nil {
		return nil // no revocation store; TokenRevoked answers false too
	}
	return config.Redis.Set(ctx, revokedKey(claims.ID), 1, ttl).Err()
}

func TokenRevoked(ctx context.Context, jti string) bool {
	if config.Redis == nil || jti == "" {
		return false
	}
	n, err := config.Redis.Exists(ctx, revokedKey(jti)).Result()
	return err == nil && n > 0
}

func revokedKey(jti string) string { return "revoked:" + jti }

// StartPasswordReset stores a short-lived code and mails it. Callers answer
// the same way whether or not the account exists.
func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, user.ResetToken)
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	result := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user)
	if result.Error != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
