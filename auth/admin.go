package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type admin struct {
	username     string
	passwordHash []byte
}

var account admin

// InitAdmin sets up the single privileged account. A plain password is only
// used when no bcrypt hash is configured.
func InitAdmin(username, password, passwordHash string) error {
	if username == "" {
		return errors.New("admin username is empty")
	}
	account = admin{username: username}
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return err
		}
		account.passwordHash = []byte(passwordHash)
		return nil
	}
	if password == "" {
		log.Warn().Msg("no admin password configured, admin login is disabled")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.passwordHash = hash
	return nil
}

func CheckAdmin(username, password string) bool {
	if len(account.passwordHash) == 0 {
		return false
	}
	sameUser := subtle.ConstantTimeCompare([]byte(username), []byte(account.username)) == 1
	// Always compare the password so timing does not reveal the user name
	err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password))
	return sameUser && err == nil
}
