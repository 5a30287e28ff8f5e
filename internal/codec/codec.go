// Package codec wraps board snapshots in a versioned JSON envelope for
// export, and validates + unwraps envelopes on import.
package codec

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"boardkit/internal/board"
	"boardkit/internal/domain"
)

// Version is the export format version tag.
const Version = "1.0"

// Envelope is the export file shape.
type Envelope struct {
	Version    string      `json:"version"`
	ExportedAt time.Time   `json:"exportedAt"`
	Data       board.Board `json:"data"`
}

// envelopeSchema is the structural contract for imports: an object whose
// data field holds both tasks and columns. Anything less is rejected
// before the board store ever sees it.
const envelopeSchema = `{
	"type": "object",
	"required": ["data"],
	"properties": {
		"version": {"type": "string"},
		"exportedAt": {"type": "string"},
		"data": {
			"type": "object",
			"required": ["tasks", "columns"],
			"properties": {
				"tasks": {"type": "object"},
				"columns": {"type": "object"},
				"columnOrder": {
					"type": "array",
					"items": {"type": "string"}
				}
			}
		}
	}
}`

var schema = jsonschema.MustCompileString("board-export.json", envelopeSchema)

// Export wraps the snapshot with the format version and an export stamp.
func Export(b board.Board, now time.Time) Envelope {
	return Envelope{
		Version:    Version,
		ExportedAt: now,
		Data:       b,
	}
}

// ExportJSON renders the envelope as indented JSON.
func ExportJSON(b board.Board, now time.Time) ([]byte, error) {
	return json.MarshalIndent(Export(b, now), "", "  ")
}

// Import parses and structurally validates an export envelope, returning
// the inner board data for the caller to feed into the store. It is
// all-or-nothing: on any failure an ImportFormatError is returned and
// nothing else, so the caller's current board is untouched.
func Import(text []byte) (board.Board, error) {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return board.Board{}, &domain.ImportFormatError{Reason: "not valid JSON", Err: err}
	}

	if err := schema.Validate(raw); err != nil {
		return board.Board{}, &domain.ImportFormatError{Reason: "envelope is structurally incomplete", Err: err}
	}

	var env Envelope
	if err := json.Unmarshal(text, &env); err != nil {
		return board.Board{}, &domain.ImportFormatError{Reason: "envelope does not decode as a board export", Err: err}
	}
	return env.Data, nil
}
