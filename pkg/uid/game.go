package uid

import (
	"github.com/google/uuid"
)

// GenerateGameID returns a random identifier for a game
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateRunID identifies one arena run. The first eight hex digits are
// enough to tell runs apart in logs.
func GenerateRunID() string {
	return uuid.NewString()[:8]
}
