package middleware

import (
	"net/http"

	"skatelog/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// CurrentUser resolves the session cookie on every request and, when
// it holds a valid token, stores the user ID in the gin context. It
// never aborts; the guards below decide what to do with the result.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookie)
		if err == nil && token != "" {
			if userID, err := utils.ValidateJWT(token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// AuthRequired redirects unauthenticated requests to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userIDKey); !ok {
			c.Redirect(http.StatusFound, "/accounts/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GuestOnly redirects authenticated requests to the post listing.
// Being logged in is not an error here, just the wrong page.
func GuestOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userIDKey); ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID, with ok reporting
// whether the request carries one.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
