package storage

import "time"

// Result is a stored record of one displayed recommendation or error.
type Result struct {
	ID            string    // UUID
	CreatedAt     time.Time // UTC
	ProjectName   string
	JobNumber     string
	LoadTagNumber string
	Parameters    string // JSON snapshot of the submitted parameter set
	Prompt        string
	Model         string
	Status        string // "success" or "error"
	Message       string // text shown to the user
}
