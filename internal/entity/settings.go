package entity

import "context"

// WebhookConfig bridges the dashboard with the external automation
// engine. Persisted on explicit save only.
type WebhookConfig struct {
	URL string `json:"url"`
}

type SettingsRepositoryInterface interface {

	// WebhookURL returns "" when no URL has been saved yet.
	WebhookURL(ctx context.Context) (string, error)

	SaveWebhookURL(ctx context.Context, url string) error
}
