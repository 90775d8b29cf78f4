package utils

import (
	"encoding/hex"
	"telemed-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateMeetingRoomID returns 32 lowercase hex characters backed by a
// random 128-bit UUID.
func GenerateMeetingRoomID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
