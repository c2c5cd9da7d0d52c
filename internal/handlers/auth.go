package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridepoolhq/carpool-backend/internal/config"
	"github.com/ridepoolhq/carpool-backend/internal/ledger"
	"github.com/ridepoolhq/carpool-backend/pkg/utils"
)

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Signup(users *ledger.UserLedger, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, ledger.ErrEmailAndPasswordRequired)
			return
		}

		user, err := users.Register(input.Email, input.Password, input.Name)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := utils.GenerateToken(&user, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"user": user.Public(), "token": token})
	}
}

func Login(users *ledger.UserLedger, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, ledger.ErrInvalidCredentials)
			return
		}

		user, err := users.Authenticate(input.Email, input.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := utils.GenerateToken(&user, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"user": user.Public(), "token": token})
	}
}

// Logout exists for API parity. Tokens are stateless, so logging out is the
// client discarding its token.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	}
}

// Me resolves the caller from an optional bearer token. An absent or invalid
// token is not an error here; the response carries a null user.
func Me(users *ledger.UserLedger, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(200, gin.H{"user": nil})
			return
		}

		userID, err := utils.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.JSON(200, gin.H{"user": nil})
			return
		}

		user, ok, err := users.Get(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !ok {
			c.JSON(200, gin.H{"user": nil})
			return
		}
		c.JSON(200, gin.H{"user": user.Public()})
	}
}

func bearerToken(c *gin.Context) string {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return token
}
