package models

import "time"

// Task statuses understood by the engine.
const (
	TaskStatusOpen   = "open"
	TaskStatusClosed = "closed"
)

// TaskTypeSLARemediation types tasks the bridge creates for breaches.
const TaskTypeSLARemediation = "sla_remediation"

// Task is the external task-store record the engine consumes. The engine
// owns only the SLA enrichment fields; everything else belongs to the store.
type Task struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	TaskType      string            `json:"task_type"`
	Status        string            `json:"status"`
	SLARef        string            `json:"sla_ref,omitempty"`
	BreachReason  string            `json:"breach_reason,omitempty"`
	FirstPassFlag bool              `json:"first_pass_flag,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Remittance statuses derived from billed vs paid amounts.
const (
	RemitStatusPaid    = "paid"
	RemitStatusPartial = "partial"
	RemitStatusDenied  = "denied"
)

// Remittance is the payer connector's ingest result consumed by the closure
// logic. TasksClosed lists every task id transitioned to closed for the
// remit's claim.
type Remittance struct {
	RemitID      string    `json:"remit_id"`
	ClaimID      string    `json:"claim_id"`
	PayerID      string    `json:"payer_id"`
	OrderID      string    `json:"order_id"`
	AmountBilled float64   `json:"amount_billed"`
	AmountPaid   float64   `json:"amount_paid"`
	Status       string    `json:"status"`
	TasksClosed  []string  `json:"tasks_closed,omitempty"`
	IngestedAt   time.Time `json:"ingested_at"`
}
