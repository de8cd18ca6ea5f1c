// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/danielhkuo/apportion/models"
)

const prefix = "sha256:"

var (
	ErrDigestMismatch = errors.New("input digest mismatch")
	ErrInvalidDigest  = errors.New("invalid digest format")
)

// Input returns the digest of an election document.
// Draw order does not affect the digest; list order does, since it is part
// of the published input.
func Input(doc models.ElectionDocument) (string, error) {
	canonical := doc
	canonical.Draws = slices.Clone(doc.Draws)
	slices.SortFunc(canonical.Draws, func(a, b models.Draw) int {
		if a.Seat != b.Seat {
			return a.Seat - b.Seat
		}
		return a.List - b.List
	})

	b, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("failed to encode input: %w", err)
	}
	sum := sha256.Sum256(b)
	return prefix + hex.EncodeToString(sum[:]), nil
}

// Verify checks that digest was computed from doc.
func Verify(doc models.ElectionDocument, digest string) error {
	if !strings.HasPrefix(digest, prefix) {
		return ErrInvalidDigest
	}
	if _, err := hex.DecodeString(strings.TrimPrefix(digest, prefix)); err != nil {
		return ErrInvalidDigest
	}

	expected, err := Input(doc)
	if err != nil {
		return err
	}
	if expected != digest {
		return fmt.Errorf("%w: report has %s, input hashes to %s", ErrDigestMismatch, digest, expected)
	}
	return nil
}
