package uid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateGameID returns a random 32 character hex id.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game ID: %v", err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}

// IsGameID reports whether s looks like an id from GenerateGameID.
func IsGameID(s string) bool {
	if len(s) != 32 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
