package server

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	errs "dormwatch/errors"
	"dormwatch/models"
	"dormwatch/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.SignupRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, bindError(err, "username and password required"))
			return
		}

		_, err := s.AuthService.SignupUser(&request)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}

		response.JSON(c, "registered successfully", http.StatusCreated, nil, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.LoginRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, bindError(err, "username and password required"))
			return
		}

		user, err := s.AuthService.LoginUser(&request)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}

		session := sessions.Default(c)
		session.Set(sessionKeyUserID, user.ID)
		session.Set(sessionKeyUsername, user.Username)
		if saveErr := session.Save(); saveErr != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "logged in", http.StatusOK, gin.H{"username": user.Username}, nil)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		session.Clear()
		session.Options(sessions.Options{Path: "/", MaxAge: -1})
		if err := session.Save(); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "logged out", http.StatusOK, nil, nil)
	}
}

// handleMe reports the identity bound to the current session. Never errors;
// an anonymous caller just gets authenticated=false.
func (s *Server) handleMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, username, ok := sessionUser(c)
		if !ok {
			response.JSON(c, "", http.StatusOK, gin.H{"authenticated": false}, nil)
			return
		}

		response.JSON(c, "", http.StatusOK, gin.H{"authenticated": true, "username": username}, nil)
	}
}

// bindError keeps validator detail out of the response body and returns the
// contract's message for missing fields instead.
func bindError(err error, message string) *errs.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return errs.InvalidInput(message)
	}
	return errs.InvalidInput("invalid request body")
}
