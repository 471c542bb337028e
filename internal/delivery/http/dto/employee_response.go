package dto

import "github.com/google/uuid"

type EmployeeResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Position string    `json:"position,omitempty"`
}
