package middleware

import "github.com/gin-gonic/gin"

// caseworkerIDKey is the key used to store the authenticated caseworker's ID
// in the Gin context.
const caseworkerIDKey = contextKey("caseworkerID")

// GetCaseworkerIDFromContext retrieves the authenticated caseworker ID from
// the Gin context. It returns the ID and a boolean indicating if it was found.
func GetCaseworkerIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(caseworkerIDKey))
	if !exists {
		return "", false
	}

	id, ok := val.(string)
	if !ok {
		// Should not happen if the auth middleware sets it correctly.
		return "", false
	}

	return id, true
}
