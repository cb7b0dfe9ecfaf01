// Package changelog records catalogue mutations as an append-only history.
package changelog

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Change types recorded for catalogue mutations.
const (
	ChangeInsert = "insert"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
)

// Entry is one recorded catalogue mutation.
type Entry struct {
	ID            string
	ChangeType    string
	ApplianceID   int64
	ApplianceName string
	Details       json.RawMessage
	PayloadDigest string
	Actor         string
	CreatedAt     time.Time
}

// Logger appends change entries.
type Logger interface {
	Append(ctx context.Context, entry Entry) error
}

// NewID generates a random entry id.
func NewID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return "chg-" + hex.EncodeToString(buf)
}

// DigestJSON computes a SHA256 hex digest for detail payloads.
func DigestJSON(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
