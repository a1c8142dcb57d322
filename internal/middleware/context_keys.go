package middleware

import "github.com/gin-gonic/gin"

// advisorEmailKey is the key used to store the authenticated advisor's email.
const advisorEmailKey = contextKey("advisorEmail")

// GetAdvisorEmailFromContext retrieves the authenticated advisor's email.
// It returns the email and a boolean indicating if it was found.
func GetAdvisorEmailFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(advisorEmailKey)); exists {
		email, ok := v.(string)
		return email, ok && email != ""
	}

	// check in the request context as well
	if v, ok := c.Request.Context().Value(advisorEmailKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
