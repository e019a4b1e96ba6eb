package app

import (
	"github.com/cesargomez89/songbox/internal/logger"
	"github.com/cesargomez89/songbox/internal/store"
)

// AuthService answers the stateless credential check. No sessions or
// tokens are issued; every call is an independent comparison.
type AuthService struct {
	Repo   *store.DB
	Logger *logger.Logger
}

func NewAuthService(repo *store.DB, log *logger.Logger) *AuthService {
	return &AuthService{Repo: repo, Logger: log}
}

// Verify matches the submitted pair against stored users. The message is
// identical for a wrong username and a wrong password.
func (s *AuthService) Verify(username, password string) (bool, string, error) {
	ok, err := s.Repo.MatchUser(username, password)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "Incorrect username or password.", nil
	}
	return true, "User authenticated successfully.", nil
}
