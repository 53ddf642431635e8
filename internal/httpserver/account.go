package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func sessionHandler(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, sess := sessions.Current()
		c.JSON(http.StatusOK, gin.H{"state": state.String(), "session": sess})
	}
}

type credentialsRequest struct {
	Email    string         `json:"email" binding:"required"`
	Password string         `json:"password" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

func signInHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid credentials payload: %v", err)})
			return
		}
		sess, err := identity.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sess})
	}
}

func signUpHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid signup payload: %v", err)})
			return
		}
		sess, err := identity.SignUp(c.Request.Context(), req.Email, req.Password, req.Metadata)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"session": sess})
	}
}

func signOutHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := identity.SignOut(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": nil})
	}
}

func profileUpdateHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var metadata map[string]any
		if err := c.ShouldBindJSON(&metadata); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid profile payload: %v", err)})
			return
		}
		if err := identity.UpdateProfile(c.Request.Context(), metadata); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}

// accountDeleteHandler delegates to the identity service, which cannot
// perform the deletion from this side; the caller always gets the same
// explanatory error.
func accountDeleteHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := identity.DeleteAccount(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
