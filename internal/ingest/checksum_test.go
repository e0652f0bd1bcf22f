package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum_KnownVector(t *testing.T) {
	// SHA-256("abc")
	assert.Equal(t,
		"sha256:ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		Checksum([]byte("abc")))
}

func TestChecksum_EmptyPayload(t *testing.T) {
	assert.Equal(t,
		"sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Checksum(nil))
}

func TestChecksum_Deterministic(t *testing.T) {
	payload := []byte("H\n2025-10-15;Madrid;16.5;8.1;1.4;80\n")
	assert.Equal(t, Checksum(payload), Checksum(payload))
}

func TestChecksum_RawBytesNotTrimmed(t *testing.T) {
	assert.NotEqual(t, Checksum([]byte("a\n")), Checksum([]byte("a")))
}
