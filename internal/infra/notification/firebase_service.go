package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"livewell/config"
	"livewell/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client the service uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client      messageSender
	sendTimeout time.Duration
	logger      *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance.
// Without a firebase section the returned service rejects every send.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		logger.Warn("Firebase is not configured, push notifications are disabled")

		return disabledService{}, nil
	}

	var firebaseCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client, cfg.Firebase.SendTimeout, logger), nil
}

func newFirebaseService(client messageSender, sendTimeout time.Duration, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:      client,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

// SendData sends a data-only message so the app decides how to render it.
func (s *firebaseService) SendData(ctx context.Context, token string, data map[string]string) error {
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	message := &messaging.Message{
		Token: token,
		Data:  data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return fmt.Errorf("%w: %w", service.ErrInvalidDeviceToken, err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.Debug("Push message sent", slog.String("messageID", messageID))

	return nil
}

type disabledService struct{}

func (disabledService) SendData(context.Context, string, map[string]string) error {
	return fmt.Errorf("push notifications are not configured")
}
