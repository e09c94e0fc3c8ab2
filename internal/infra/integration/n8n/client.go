package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/udaanx/coldflow/internal/usecase"
)

// accountSnapshotLimit caps how many fleet accounts ride along with a
// transmission. The workflow only uses the first few senders.
const accountSnapshotLimit = 3

type Client struct {
	HTTPClient *http.Client
}

// NewClient builds the webhook client. No timeout on purpose: a send is
// a manual, one-at-a-time action and the operator waits for the answer.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{},
	}
}

// Dispatch posts one batch to the automation gateway. Exactly one
// attempt, no retry. A nil return is the only confirmation of success.
func (c *Client) Dispatch(ctx context.Context, webhookURL string, input usecase.DispatchInput) error {
	if webhookURL == "" {
		return usecase.NewConfigMissingError()
	}

	accounts := input.Accounts
	if len(accounts) > accountSnapshotLimit {
		accounts = accounts[:accountSnapshotLimit]
	}

	payload := webhookPayload{
		BatchName: input.BatchName,
		Leads:     input.Leads,
		Accounts:  accounts,
		Timestamp: input.SentAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("🚀 [n8n] Transmitting batch %q (%d leads)", input.BatchName, len(input.Leads))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("❌ [n8n] Gateway unreachable: %v", err)
		return usecase.NewNetworkUnreachableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("⚠️ [n8n] Gateway rejected batch %q: %s", input.BatchName, resp.Status)
		return usecase.NewRemoteRejectedError(resp.Status)
	}

	log.Printf("✅ [n8n] Workflow triggered for %q", input.BatchName)
	return nil
}
