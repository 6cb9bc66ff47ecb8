package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random unique id. When no randomness is available it
// falls back to a timestamp string.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}
