package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateBookingNumber creates a unique booking number with timestamp.
// Format: BKG-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingNumber() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("BKG-%s-%s-%s", datePart, timePart, randomPart)
}

// GenerateInvoiceNumber creates a unique invoice number with timestamp.
// Format: INV-YYYYMMDD-HHMMSS-RANDOM
func GenerateInvoiceNumber() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("INV-%s-%s-%s", datePart, timePart, randomPart)
}
