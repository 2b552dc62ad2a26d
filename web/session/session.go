// Package session maps gin sessions to the logged-in user id.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

// SessionMaxAge bounds the lifetime of a session in seconds (24 hours).
const SessionMaxAge = 24 * 60 * 60

// SetLoginUser records the authenticated user id in the session.
func SetLoginUser(c *gin.Context, userId int) error {
	s := sessions.Default(c)
	s.Set(loginUserId, userId)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetLoginUserId resolves the session to a user id. ok is false for
// anonymous or expired sessions.
func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserId); obj != nil {
		if id, ok := obj.(int); ok {
			return id, true
		}
	}
	return 0, false
}

func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

// ClearSession drops the session record and expires the cookie. Clearing an
// already-cleared session is a no-op.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
