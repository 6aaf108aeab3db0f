package hashify

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf16"
)

const miniSeed uint32 = 0x811c9dc5

// Hash returns the hex SHA-256 digest of the JSON encoding of v.
func Hash(v any) (string, error) {
	b, err := encode(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Mini returns an 8 character hex rolling hash of the JSON encoding of v.
func Mini(v any) (string, error) {
	b, err := encode(v)
	if err != nil {
		return "", err
	}
	return MiniString(string(b)), nil
}

// MiniString hashes s directly. The hash runs over UTF-16 code units, so
// non-ASCII input hashes the same as it would in a browser.
func MiniString(s string) string {
	h := miniSeed
	for _, unit := range utf16.Encode([]rune(s)) {
		h = 31*h + uint32(unit)
	}
	return fmt.Sprintf("%08x", h)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
