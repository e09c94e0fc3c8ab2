package n8n

import "github.com/udaanx/coldflow/internal/entity"

// webhookPayload is the wire contract of the automation workflow.
// Field names must not change without updating the n8n side.
type webhookPayload struct {
	BatchName string           `json:"batchName"`
	Leads     []entity.Lead    `json:"leads"`
	Accounts  []entity.Account `json:"accounts"`
	Timestamp string           `json:"timestamp"` // ISO-8601
}
