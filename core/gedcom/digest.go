package gedcom

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// Digest returns the hex BLAKE3-256 hash of the canonical encoding of g:
// LF line endings and no validation pass.
func Digest(g *model.Gedcom) (string, error) {
	w, err := NewWriter(g)
	if err != nil {
		return "", err
	}
	data, err := w.Encode()
	if err != nil {
		return "", err
	}
	return DigestBytes(data), nil
}

// DigestBytes returns the hex BLAKE3-256 hash of data.
func DigestBytes(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}
