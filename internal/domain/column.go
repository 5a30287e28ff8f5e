package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Field limits for Column validation.
const (
	MaxColumnTitleLen = 50
	MaxColumnTasks    = 100
)

// Color is a palette token carried over from the original web board's
// column styling. The TUI maps each token onto a theme color.
type Color string

// The fixed column palette.
const (
	ColorGray   Color = "bg-gray-100"
	ColorRed    Color = "bg-red-100"
	ColorYellow Color = "bg-yellow-100"
	ColorGreen  Color = "bg-green-100"
	ColorBlue   Color = "bg-blue-100"
	ColorIndigo Color = "bg-indigo-100"
	ColorPurple Color = "bg-purple-100"
	ColorPink   Color = "bg-pink-100"
)

// Palette lists every valid column color token, in picker order.
var Palette = []Color{
	ColorGray,
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorIndigo,
	ColorPurple,
	ColorPink,
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// Column is an ordered bucket of task ids with a title and color.
type Column struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     Color     `json:"color"`
	TaskIDs   []string  `json:"taskIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Order     int       `json:"order"`
}

// Validate checks the column's local field constraints. The cross-entity
// rule that every TaskIDs entry references an existing task cannot be
// verified here; the board store enforces it on every mutation.
func (c Column) Validate() []string {
	var errs []string

	if c.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if c.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if utf8.RuneCountInString(c.Title) > MaxColumnTitleLen {
		errs = append(errs, fmt.Sprintf("title must be at most %d characters", MaxColumnTitleLen))
	}
	if !c.Color.Valid() {
		errs = append(errs, fmt.Sprintf("color %q is not in the palette", c.Color))
	}
	if len(c.TaskIDs) > MaxColumnTasks {
		errs = append(errs, fmt.Sprintf("column must hold at most %d tasks", MaxColumnTasks))
	}
	seen := make(map[string]bool, len(c.TaskIDs))
	for _, id := range c.TaskIDs {
		if seen[id] {
			errs = append(errs, fmt.Sprintf("duplicate task id %s", id))
			continue
		}
		seen[id] = true
	}

	return errs
}

// ColumnPatch is a partial update to a Column. Nil fields are left
// unchanged. Task membership is not patchable; it changes only through the
// board store's move operations.
type ColumnPatch struct {
	Title *string
	Color *Color
}

// Apply merges the patch over the column, stamps UpdatedAt and
// re-validates, mirroring Task.Apply.
func (c Column) Apply(p ColumnPatch, now time.Time) (Column, error) {
	out := c
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	out.UpdatedAt = now

	if errs := out.Validate(); len(errs) > 0 {
		return Column{}, &ValidationError{Errors: errs}
	}
	return out, nil
}
