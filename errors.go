package snow1

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by LoadKey. Callers should compare against
// these with errors.Is rather than matching on message text.
var (
	ErrInvalidKeySize = errors.New("snow1: key size must be 128 or 256 bits")
	ErrInvalidMode    = errors.New("snow1: mode must be StandardMode or IVMode")
	ErrKeyTooShort    = errors.New("snow1: key buffer shorter than key size")
)

func validateKeyBits(keyBits int) error {
	if keyBits != 128 && keyBits != 256 {
		return fmt.Errorf("snow1: keyBits=%d: %w", keyBits, ErrInvalidKeySize)
	}
	return nil
}

func validateMode(mode Mode) error {
	if mode != StandardMode && mode != IVMode {
		return fmt.Errorf("snow1: mode=%d: %w", uint32(mode), ErrInvalidMode)
	}
	return nil
}

func validateKeyLength(key []byte, keyBits int) error {
	if len(key) < keyBits/8 {
		return fmt.Errorf("snow1: got %d key bytes, need %d: %w", len(key), keyBits/8, ErrKeyTooShort)
	}
	return nil
}
