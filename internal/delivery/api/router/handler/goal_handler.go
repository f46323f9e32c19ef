package handler

import (
	"net/http"

	"livewell/internal/delivery/api/middleware"
	"livewell/internal/delivery/api/response"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GoalHandler serves a user's weekly goal history.
type GoalHandler struct {
	goalUC usecase.GoalUsecase
}

// NewGoalHandler is the constructor for GoalHandler
func NewGoalHandler(goalUC usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{goalUC: goalUC}
}

// SetAlreadySetRequest is the body of a recommendation update.
type SetAlreadySetRequest struct {
	AlreadySet *bool `json:"already_set" validate:"required"`
}

// ListRecommendations returns the caller's recommendations, newest first
func (h *GoalHandler) ListRecommendations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recs, err := h.goalUC.ListRecommendations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recs)
}

// SetAlreadySet marks whether the caller adopted a recommendation
func (h *GoalHandler) SetAlreadySet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recommendID, err := uuid.Parse(c.Param("recommend_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recommendation ID")
	}

	var req SetAlreadySetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.goalUC.SetAlreadySet(c.Request().Context(), userID, recommendID, *req.AlreadySet); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Goal recommendation updated successfully"})
}
