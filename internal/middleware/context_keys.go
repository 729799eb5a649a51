package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// userNameKey is the key used to store the authenticated user's display name
// in the request context.
const userNameKey = contextKey("userName")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIdVal := c.Request.Context().Value(userIDKey)
		if userIdVal != nil {
			return userIdVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetUserNameFromContext retrieves the authenticated user's display name from
// the Gin context. It falls back to the user ID when no name claim was set.
func GetUserNameFromContext(c *gin.Context) (string, bool) {
	nameVal := c.Request.Context().Value(userNameKey)
	if name, ok := nameVal.(string); ok && name != "" {
		return name, true
	}
	return GetUserIDFromContext(c)
}
