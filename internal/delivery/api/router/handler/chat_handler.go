package handler

import (
	"log/slog"

	"livewell/internal/delivery/api/middleware"
	"livewell/internal/delivery/api/response"
	deliverycontext "livewell/internal/delivery/context"
	"livewell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler streams assistant replies as server-sent events.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// ChatRequest is the body of a chat turn.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// Chat runs one assistant turn. Fragments are sent as "message" events and the
// stream ends with either "done" or a single "error" event.
func (h *ChatHandler) Chat(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing token claims")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	stream := response.NewEventStream(c)

	for text, err := range h.chatUC.Converse(ctx, claims, req.Message) {
		if err != nil {
			logger.Warn("chat turn failed", slog.Any("error", err))
			if writeErr := stream.Fail(err); writeErr != nil {
				logger.Debug("client left before error event", slog.Any("error", writeErr))
			}

			return nil
		}

		if err := stream.Message(text); err != nil {
			logger.Debug("client left mid-stream", slog.Any("error", err))

			return nil
		}
	}

	if err := stream.Done(); err != nil {
		logger.Debug("client left before done event", slog.Any("error", err))
	}

	return nil
}
