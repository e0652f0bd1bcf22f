package ingest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum returns the content address of a payload: the SHA-256 digest of
// the raw bytes exactly as received, rendered as "sha256:" plus lower-case
// hex. It is computed regardless of how (or whether) the payload parses.
func Checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "sha256:" + hex.EncodeToString(sum[:])
}
