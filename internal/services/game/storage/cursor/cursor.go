// Package cursor encodes opaque page tokens for keyset pagination.
//
// A token carries the sort key of the last item on the previous page plus a
// hash of the filter it was issued under, so a token cannot silently be
// replayed against a different query.
package cursor

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cursor is the decoded page token. Matches paginate by (CreatedAt, ID);
// event pages paginate by Seq.
type Cursor struct {
	CreatedAt  int64  `json:"created_at,omitempty"`
	ID         string `json:"id,omitempty"`
	Seq        int64  `json:"seq,omitempty"`
	FilterHash string `json:"filter_hash,omitempty"`
}

// Encode serializes a cursor into an opaque page token.
func Encode(c Cursor) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// Decode parses a page token back into a cursor.
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, fmt.Errorf("empty page token")
	}
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("decode page token: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, fmt.Errorf("unmarshal page token: %w", err)
	}
	return c, nil
}

// HashFilter returns a short stable hash of a filter expression.
// Empty filters hash to the empty string.
func HashFilter(filter string) string {
	if filter == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(filter))
	return hex.EncodeToString(sum[:])[:16]
}

// ValidateFilterHash rejects tokens issued under a different filter.
func ValidateFilterHash(c Cursor, filter string) error {
	if c.FilterHash != HashFilter(filter) {
		return fmt.Errorf("page token does not match the request filter")
	}
	return nil
}
