package service

import (
	"context"
)

// PushService defines the interface for push notification services
type PushService interface {
	// SendBatchPush sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchPush(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSinglePush sends a push notification to a single device token
	SendSinglePush(ctx context.Context, token, title, body string, data map[string]string) error
}
