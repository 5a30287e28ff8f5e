package codec

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardkit/internal/board"
	"boardkit/internal/domain"
)

func sampleBoard(t *testing.T) board.Board {
	t.Helper()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	b := board.Empty()
	b, todoID, err := b.AddColumn(board.ColumnDraft{Title: "Todo", Color: domain.ColorBlue}, now)
	require.NoError(t, err)
	b, _, err = b.AddColumn(board.ColumnDraft{Title: "Done", Color: domain.ColorGreen}, now)
	require.NoError(t, err)
	b, _, err = b.AddTask(todoID, board.TaskDraft{
		Title:    "Write release notes",
		Priority: domain.PriorityHigh,
		Assignee: "sam",
		DueDate:  "2024-03-08",
	}, now)
	require.NoError(t, err)
	return b
}

func TestExportImportRoundTrip(t *testing.T) {
	b := sampleBoard(t)
	now := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)

	data, err := ExportJSON(b, now)
	require.NoError(t, err)

	got, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestExportEnvelopeShape(t *testing.T) {
	data, err := ExportJSON(sampleBoard(t), time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "version")
	assert.Contains(t, raw, "exportedAt")
	assert.Contains(t, raw, "data")
	assert.JSONEq(t, `"1.0"`, string(raw["version"]))
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	_, err := Import([]byte(`{not json`))

	var ife *domain.ImportFormatError
	require.ErrorAs(t, err, &ife)
	assert.True(t, errors.Is(err, domain.ErrBadImport))
}

func TestImportRejectsIncompleteEnvelopes(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no data field", `{"version":"1.0"}`},
		{"data missing tasks", `{"data":{"columns":{}}}`},
		{"data missing columns", `{"data":{"tasks":{}}}`},
		{"data not an object", `{"data":[]}`},
		{"tasks not an object", `{"data":{"tasks":[],"columns":{}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Import([]byte(tc.text))

			var ife *domain.ImportFormatError
			require.ErrorAs(t, err, &ife)
			assert.True(t, errors.Is(err, domain.ErrBadImport))
		})
	}
}

func TestImportAcceptsMinimalEnvelope(t *testing.T) {
	got, err := Import([]byte(`{"data":{"tasks":{},"columns":{}}}`))
	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
	assert.Empty(t, got.Columns)
}
