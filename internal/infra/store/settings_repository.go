package store

import "context"

type SettingsRepository struct {
	Store *Store
}

func NewSettingsRepository(s *Store) *SettingsRepository {
	return &SettingsRepository{Store: s}
}

// WebhookURL returns "" when no URL has ever been saved.
func (r *SettingsRepository) WebhookURL(ctx context.Context) (string, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	var url string
	if _, err := r.Store.Load(KeyWebhook, &url); err != nil {
		return "", err
	}
	return url, nil
}

func (r *SettingsRepository) SaveWebhookURL(ctx context.Context, url string) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	return r.Store.Save(KeyWebhook, url)
}
