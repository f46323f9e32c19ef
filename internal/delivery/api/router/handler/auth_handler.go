package handler

import (
	"net/http"

	"livewell/internal/delivery/api/response"
	"livewell/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler exchanges Google sign-ins for first-party tokens.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// GoogleSignInRequest carries the ID token returned by Google sign-in.
type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// GoogleSignIn verifies the Google ID token and issues a token for the "google" routes
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.authUC.ExchangeGoogleToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token)
}
