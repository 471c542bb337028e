package dto

import "github.com/google/uuid"

type ActivityEventResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Action     string    `json:"action"`
	Subject    string    `json:"subject,omitempty"`
	OccurredAt string    `json:"occurred_at"`
}
