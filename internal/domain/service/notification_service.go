package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidDeviceToken is returned when the push provider no longer accepts the token.
var ErrInvalidDeviceToken = errors.New("device token is invalid or unregistered")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendData delivers one data-only push message to a single device token.
	SendData(ctx context.Context, token string, data map[string]string) error
}
