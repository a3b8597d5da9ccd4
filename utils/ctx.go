package utils

import "github.com/gin-gonic/gin"

const UsernameKey = "username"

// CurrentUsername returns the logged-in username, or "" for anonymous
// requests.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get(UsernameKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
