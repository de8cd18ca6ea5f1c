// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package digest fingerprints election input so a published report can be tied
back to the exact data it was computed from.

# Computing

	d, err := digest.Input(doc) // "sha256:3f2a..."

The digest is the SHA-256 of the document's JSON encoding with draws sorted
by seat. List order is kept.

# Verifying

	if err := digest.Verify(doc, report.InputDigest); err != nil {
		// ErrDigestMismatch or ErrInvalidDigest
	}
*/
package digest
