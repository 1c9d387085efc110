package utils

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
)

// Revision returns the hex-encoded BLAKE2b-256 digest of a JSON document.
// The document is compacted first so that whitespace differences do not
// change the revision. Invalid JSON is hashed as-is.
func Revision(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err == nil {
		data = buf.Bytes()
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
