// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package electionio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/apportion/apportionment"
	"github.com/danielhkuo/apportion/models"
)

// Stdin is the path that reads the election from the supplied reader.
const Stdin = "-"

// FormatFor picks the document format from a file extension.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return models.FormatYAML
	}
	return models.FormatJSON
}

// ReadElection loads an election document. Path "-" reads JSON from stdin.
// Unreadable or malformed documents wrap apportionment.ErrInvalidInput.
func ReadElection(path string, stdin io.Reader) (models.ElectionDocument, error) {
	var doc models.ElectionDocument
	if err := decodeFile(path, stdin, &doc); err != nil {
		return models.ElectionDocument{}, err
	}
	return doc, nil
}

// ReadReport loads a previously written report.
func ReadReport(path string, stdin io.Reader) (models.Report, error) {
	var rep models.Report
	if err := decodeFile(path, stdin, &rep); err != nil {
		return models.Report{}, err
	}
	if rep.Result == nil {
		return models.Report{}, fmt.Errorf("%w: %s: report has no result", apportionment.ErrInvalidInput, path)
	}
	return rep, nil
}

func decodeFile(path string, stdin io.Reader, v any) error {
	r := stdin
	format := models.FormatJSON
	if path != Stdin {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", apportionment.ErrInvalidInput, err)
		}
		defer f.Close()
		r = f
		format = FormatFor(path)
	}

	if err := Decode(r, format, v); err != nil {
		return fmt.Errorf("%w: %s: %w", apportionment.ErrInvalidInput, path, err)
	}
	return nil
}

// Decode parses a single JSON or YAML document into v, rejecting unknown fields.
func Decode(r io.Reader, format string, v any) error {
	switch format {
	case models.FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("empty document")
			}
			return err
		}
		return nil
	case models.FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("empty document")
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}

// WriteReports writes one report as a document, several as a sequence.
func WriteReports(w io.Writer, format string, reports []models.Report) error {
	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	return Encode(w, format, v)
}

// Encode writes v as indented JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case models.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case models.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Error kinds reported in ErrorResponse.Error
const (
	KindInvalidInput  = "invalid_input"
	KindUnresolvedTie = "unresolved_tie"
	KindInvariant     = "invariant_violation"
	KindInternal      = "internal_error"
)

// NewErrorResponse describes err for machine consumption.
func NewErrorResponse(file string, err error) models.ErrorResponse {
	resp := models.ErrorResponse{
		Error:   Kind(err),
		Message: err.Error(),
		File:    file,
	}
	var tie *apportionment.TieError
	if errors.As(err, &tie) {
		resp.Seat = tie.Seat
		resp.Candidates = tie.Candidates
	}
	return resp
}

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	switch {
	case errors.Is(err, apportionment.ErrUnresolvedTie):
		return KindUnresolvedTie
	case errors.Is(err, apportionment.ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, apportionment.ErrInvariantViolation):
		return KindInvariant
	}
	return KindInternal
}

// WriteError writes a JSON error response on a single line
func WriteError(w io.Writer, resp models.ErrorResponse) error {
	return json.NewEncoder(w).Encode(resp)
}
