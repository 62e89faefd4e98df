package models

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// HashLen is the size of a BitTorrent v1 info hash in bytes.
const HashLen = 20

// Hash is a 20-byte info hash. The zero value is all zeroes. Hashes are
// comparable and usable as map keys; ordering is byte-wise.
type Hash [HashLen]byte

// NotEnoughBytesError reports a buffer shorter than HashLen.
type NotEnoughBytesError struct {
	Got int
}

func (e NotEnoughBytesError) Error() string {
	return fmt.Sprintf("not enough bytes for info hash: got %d, expected %d", e.Got, HashLen)
}

// TooManyBytesError reports a buffer longer than HashLen.
type TooManyBytesError struct {
	Got int
}

func (e TooManyBytesError) Error() string {
	return fmt.Sprintf("too many bytes for info hash: got %d, expected %d", e.Got, HashLen)
}

// NewHash copies b into a Hash. The caller guarantees len(b) == HashLen;
// any other length panics. Use HashFromBytes for untrusted input.
func NewHash(b []byte) Hash {
	if len(b) != HashLen {
		panic(fmt.Sprintf("models: NewHash called with %d bytes", len(b)))
	}
	var h Hash
	copy(h[:], b)
	return h
}

// HashFromBytes copies a variable-length buffer into a Hash, reporting
// short and long buffers as distinct error kinds.
func HashFromBytes(b []byte) (Hash, error) {
	if len(b) < HashLen {
		return Hash{}, NotEnoughBytesError{Got: len(b)}
	}
	if len(b) > HashLen {
		return Hash{}, TooManyBytesError{Got: len(b)}
	}
	return NewHash(b), nil
}

// ParseHash parses a 40-character hexadecimal string. Both cases are
// accepted; String always re-emits lowercase.
func ParseHash(s string) (Hash, error) {
	if len(s) != 2*HashLen {
		return Hash{}, fmt.Errorf("info hash must be %d hex characters, got %d", 2*HashLen, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid info hash %q: %w", s, err)
	}
	return NewHash(b), nil
}

// Bytes returns a copy of the raw hash bytes.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashLen)
	copy(b, h[:])
	return b
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Compare orders hashes byte-wise, returning -1, 0 or +1.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
