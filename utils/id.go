package utils

import (
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// DateStamp returns today's date as YYYY-MM-DD, the format community
// records carry on their date field
func DateStamp() string {
	return time.Now().UTC().Format("2006-01-02")
}
