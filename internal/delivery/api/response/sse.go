package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domainerrors "livewell/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Event names written on a chat stream.
const (
	EventMessage = "message"
	EventError   = "error"
	EventDone    = "done"
)

// MessageEvent carries one reply fragment.
type MessageEvent struct {
	Text string `json:"text"`
}

// ErrorEvent terminates a stream that failed after headers were sent.
type ErrorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EventStream writes server-sent events to the response.
type EventStream struct {
	res *echo.Response
}

// NewEventStream sends the event-stream headers and returns a writer for the body.
func NewEventStream(c echo.Context) *EventStream {
	res := c.Response()
	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")

	// A reply can outlive the server write timeout. Writers without deadline support are left alone.
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})

	res.WriteHeader(http.StatusOK)
	res.Flush()

	return &EventStream{res: res}
}

// Send writes one event with a JSON payload and flushes it.
func (s *EventStream) Send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode event payload")
	}

	if _, err := fmt.Fprintf(s.res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.Wrap(err, "failed to write event")
	}
	s.res.Flush()

	return nil
}

// Message writes a reply fragment.
func (s *EventStream) Message(text string) error {
	return s.Send(EventMessage, MessageEvent{Text: text})
}

// Fail writes the terminal error event. Internal errors other than upstream failures
// are reported without their cause.
func (s *EventStream) Fail(err error) error {
	event := ErrorEvent{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: domainerrors.ErrInternalError.Message(),
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && (appErr.HTTPCode() < http.StatusInternalServerError || domainerrors.IsUpstreamFailure(err)) {
		event.Code = appErr.ErrorCode()
		event.Message = appErr.Message()
		if details := appErr.Details(); details != "" && appErr.HTTPCode() < http.StatusInternalServerError {
			event.Message += ": " + details
		}
	}

	return s.Send(EventError, event)
}

// Done writes the terminal success event.
func (s *EventStream) Done() error {
	return s.Send(EventDone, struct{}{})
}
