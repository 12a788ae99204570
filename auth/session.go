package auth

import (
	"encoding/gob"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	adminKey   = "admin"
	expiresKey = "expires"

	FlashSuccess = "success"
	FlashError   = "error"
)

func init() {
	// flashes live in the session values as []interface{}
	gob.Register([]interface{}{})
}

type Session struct {
	sessions.Session
}

type Flash struct {
	Type    string
	Message string
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

// LoginAdmin marks the session as authenticated for maxAge seconds
func (s *Session) LoginAdmin(maxAge int) error {
	s.Set(adminKey, true)
	s.Set(expiresKey, time.Now().Unix()+int64(maxAge))
	return s.Save()
}

// LogoutAdmin drops the authentication but keeps the session itself, so a
// flash message can still be shown on the next page
func (s *Session) LogoutAdmin() error {
	s.Delete(adminKey)
	s.Delete(expiresKey)
	return s.Save()
}

func (s *Session) IsAdmin() bool {
	admin, _ := s.Get(adminKey).(bool)
	expires, _ := s.Get(expiresKey).(int64)
	return admin && expires > time.Now().Unix()
}

func (s *Session) Success(message string) {
	s.AddFlash(message, FlashSuccess)
	_ = s.Save()
}

func (s *Session) Error(message string) {
	s.AddFlash(message, FlashError)
	_ = s.Save()
}

// Messages pops the pending flash messages, successes first
func (s *Session) Messages() (result []Flash) {
	for _, kind := range []string{FlashSuccess, FlashError} {
		for _, m := range s.Flashes(kind) {
			if msg, ok := m.(string); ok {
				result = append(result, Flash{Type: kind, Message: msg})
			}
		}
	}
	if len(result) > 0 {
		_ = s.Save()
	}
	return
}
