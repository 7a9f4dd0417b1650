// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inference-back/internal/adapters/auth"
	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(db ports.DatabasePort, authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		existing, err := db.GetUserByUsername(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not create user"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusConflict, gin.H{"detail": "username already registered"})
			return
		}

		hashed, err := authenticator.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not create user"})
			return
		}

		id, err := db.InsertUser(c.Request.Context(), model.AuthenticationUser{
			Username:       req.Username,
			Email:          req.Email,
			HashedPassword: hashed,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id, "message": "user registered!"})
	}
}

func Login(db ports.DatabasePort, authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		user, err := db.GetAuthUserByUsername(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not authenticate"})
			return
		}
		if user == nil || !authenticator.VerifyPassword(req.Password, user.HashedPassword) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "incorrect username or password"})
			return
		}

		accessToken, err := authenticator.CreateAccessToken(user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not authenticate"})
			return
		}

		c.JSON(http.StatusOK, model.Token{AccessToken: accessToken, TokenType: "bearer"})
	}
}
