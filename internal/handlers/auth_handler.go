package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-chatbot/internal/config"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
	"github.com/BruksfildServices01/barber-chatbot/internal/httpresp"
	"github.com/BruksfildServices01/barber-chatbot/internal/middleware"
)

// A API de recepção tem uma única credencial: a senha da recepção,
// comparada com o hash bcrypt do ambiente.
type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if h.config.ReceptionHash == "" {
		httperr.Unauthorized(c, "login_disabled", "Login da recepção não configurado.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.config.ReceptionHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.OK(c, gin.H{"token": token})
}

func (h *AuthHandler) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  middleware.RoleReception,
		"role": middleware.RoleReception,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
