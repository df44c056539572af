package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// HashReader computes the sha256 content hash of r. The raw sum is what the
// uploaded_files unique index stores; the hex form is for logs and signals.
func HashReader(r io.Reader) (sum []byte, hexHash string, err error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, "", fmt.Errorf("hash content: %w", err)
	}
	sum = h.Sum(nil)
	return sum, hex.EncodeToString(sum), nil
}

// HashBytes is HashReader for in-memory content.
func HashBytes(b []byte) (sum []byte, hexHash string) {
	s := sha256.Sum256(b)
	return s[:], hex.EncodeToString(s[:])
}
