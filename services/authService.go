package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/ammafood/amma-api/config"
	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// LoginAdmin authenticates the dashboard. With a remote tier configured the
// admin account table is authoritative and a signed JWT is returned; without
// one the hardcoded demo credential pair is accepted and a session token is
// written into session storage instead. Failures come back as
// ErrInvalidCredentials, never as a panic through the HTTP layer.
func (s *Service) LoginAdmin(ctx context.Context, email, password string) (models.AdminUser, string, error) {
	if s.remote != nil {
		account, err := s.remote.FindAdminByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Println("admin lookup failed:", err)
			}
			return models.AdminUser{}, "", ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
			return models.AdminUser{}, "", ErrInvalidCredentials
		}
		token, err := generateAdminJWT(account)
		if err != nil {
			log.Println("token generation failed:", err)
			return models.AdminUser{}, "", ErrInvalidCredentials
		}
		return models.AdminUser{Email: account.Email, UID: account.ID}, token, nil
	}

	if email != config.DemoAdminEmail || password != config.DemoAdminPassword {
		return models.AdminUser{}, "", ErrInvalidCredentials
	}
	session := models.SessionToken{
		Email:   email,
		UID:     config.DemoAdminUID,
		Expires: time.Now().Add(sessionTTL).UnixMilli(),
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return models.AdminUser{}, "", err
	}
	if err := s.local.Set(store.SessionKey, raw); err != nil {
		return models.AdminUser{}, "", err
	}
	return models.AdminUser{Email: session.Email, UID: session.UID}, "", nil
}

// LogoutAdmin drops the demo session. JWTs are stateless; clients discard
// them.
func (s *Service) LogoutAdmin() error {
	return s.local.Delete(store.SessionKey)
}

// CurrentSession returns the demo-mode session identity, removing it when
// expired. Nil means logged out.
func (s *Service) CurrentSession() *models.AdminUser {
	raw, ok := s.local.Get(store.SessionKey)
	if !ok {
		return nil
	}
	var session models.SessionToken
	if err := json.Unmarshal(raw, &session); err != nil {
		_ = s.local.Delete(store.SessionKey)
		return nil
	}
	if session.Expires <= time.Now().UnixMilli() {
		_ = s.local.Delete(store.SessionKey)
		return nil
	}
	return &models.AdminUser{
		Email:       session.Email,
		UID:         session.UID,
		IsAnonymous: session.IsAnonymous,
	}
}

// SubscribeToAuth reports session presence immediately and then every poll
// tick, delivering nil once the session expires or is removed.
func (s *Service) SubscribeToAuth(cb func(*models.AdminUser)) func() {
	return startSubscription(authPollInterval, s.CurrentSession, cb)
}

func generateAdminJWT(account models.AdminAccount) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(sessionTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
