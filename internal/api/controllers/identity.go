package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentIdentity reads the session identity resolved by the auth middleware.
// ok is false for anonymous requests.
func currentIdentity(c *gin.Context) (id uuid.UUID, email string, ok bool) {
	rawID := c.GetString("user_id")
	if rawID == "" {
		return uuid.Nil, "", false
	}
	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", false
	}
	return parsed, c.GetString("user_email"), true
}
