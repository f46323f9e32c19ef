package handler

import (
	"net/http"

	"livewell/internal/delivery/api/response"
	"livewell/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler triggers the weekly recommendation jobs on demand.
type AdminHandler struct {
	recommendationUC usecase.RecommendationUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(recommendationUC usecase.RecommendationUsecase) *AdminHandler {
	return &AdminHandler{recommendationUC: recommendationUC}
}

// GenerateRecommendations runs one generation cycle and reports its counts
func (h *AdminHandler) GenerateRecommendations(c echo.Context) error {
	report, err := h.recommendationUC.Generate(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// SendRecommendations pushes the staged recommendations and reports its counts
func (h *AdminHandler) SendRecommendations(c echo.Context) error {
	report, err := h.recommendationUC.Send(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
