package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantcart/internal/adapter/http/dto/request"
	"plantcart/internal/adapter/http/dto/response"
	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// AuthHandler issues and checks admin session tokens.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges the admin passcode for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			log.Printf("[auth][handler] login rejected")
			appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid password", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[auth][handler] login failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[auth][handler] login success")
	c.JSON(http.StatusOK, response.LoginResponse{Success: true, Token: token})
}

// Verify confirms the bearer token the middleware already accepted.
func (h *AuthHandler) Verify(c *gin.Context) {
	role := c.GetString("role")
	c.JSON(http.StatusOK, gin.H{"valid": true, "role": role})
}
