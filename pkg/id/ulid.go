package id

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GetULID generates a lexicographically sortable id.
// Used for webhook event archive ids so they order by arrival time.
func GetULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	ms := ulid.Timestamp(time.Now())
	uid, err := ulid.New(ms, entropy)
	if err != nil {
		return ""
	}
	return uid.String()
}
