package handler

import (
	"context"
	"iter"
	"net/http"
	"testing"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	mockusecase "livewell/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatHandler(t *testing.T) (*ChatHandler, *mockusecase.MockChatUsecase) {
	t.Helper()

	chatUC := mockusecase.NewMockChatUsecase(t)

	return NewChatHandler(ChatHandlerParams{ChatUC: chatUC, Logger: newDiscardLogger()}), chatUC
}

func fragments(texts []string, err error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, text := range texts {
			if !yield(text, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}

func TestChatHandler_StreamsFragments(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/chatbot/google", `{"message":"I started taking vitamin D"}`)

	chatUC.EXPECT().
		Converse(mock.Anything, mock.MatchedBy(func(claims *entity.ClaimSet) bool {
			return claims.Subject == testUserID.String()
		}), "I started taking vitamin D").
		Return(fragments([]string{"Noted", ", I added it."}, nil))

	require.NoError(t, h.Chat(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"event: message\ndata: {\"text\":\"Noted\"}\n\n"+
			"event: message\ndata: {\"text\":\", I added it.\"}\n\n"+
			"event: done\ndata: {}\n\n",
		rec.Body.String())
}

func TestChatHandler_TerminalErrorEvent(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantEvent string
	}{
		{
			name:      "upstream failure keeps its cause",
			err:       domainerrors.NewUpstreamError("language model", errors.New("quota exceeded")),
			wantEvent: "event: error\ndata: {\"code\":\"UPSTREAM_FAILURE\",\"message\":\"language model failed: quota exceeded\"}\n\n",
		},
		{
			name:      "missing record",
			err:       domainerrors.ErrMedicationNotFound.WithDetails("med_id 42"),
			wantEvent: "event: error\ndata: {\"code\":\"MEDICATION_NOT_FOUND\",\"message\":\"Medication not found: med_id 42\"}\n\n",
		},
		{
			name:      "unexpected error is hidden",
			err:       errors.New("nil map write"),
			wantEvent: "event: error\ndata: {\"code\":\"INTERNAL_ERROR\",\"message\":\"Internal server error\"}\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, chatUC := createTestChatHandler(t)
			c, rec := newTestContext(t, http.MethodPost, "/api/chatbot/email", `{"message":"hi"}`)

			chatUC.EXPECT().Converse(mock.Anything, mock.Anything, "hi").Return(fragments([]string{"Let me"}, tt.err))

			require.NoError(t, h.Chat(c))

			assert.Equal(t, "event: message\ndata: {\"text\":\"Let me\"}\n\n"+tt.wantEvent, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "event: done")
		})
	}
}

func TestChatHandler_RejectsEmptyMessage(t *testing.T) {
	h, _ := createTestChatHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/chatbot/google", `{"message":""}`)

	require.NoError(t, h.Chat(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestChatHandler_RequiresClaims(t *testing.T) {
	h, _ := createTestChatHandler(t)
	c, rec := newAnonymousContext(t, http.MethodPost, "/api/chatbot/google", `{"message":"hi"}`)

	require.NoError(t, h.Chat(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatHandler_PassesRequestContext(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	c, _ := newTestContext(t, http.MethodPost, "/api/chatbot/google", `{"message":"hi"}`)

	type ctxKey struct{}
	ctx := context.WithValue(c.Request().Context(), ctxKey{}, "marker")
	c.SetRequest(c.Request().WithContext(ctx))

	chatUC.EXPECT().
		Converse(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Value(ctxKey{}) == "marker" }), mock.Anything, "hi").
		Return(fragments(nil, nil))

	require.NoError(t, h.Chat(c))
}
