package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boardkit/internal/domain"
	"boardkit/internal/ui/styles"
)

// TaskSubmittedMsg is emitted when the task form is submitted.
type TaskSubmittedMsg struct {
	TaskID      string // empty for a new task, set when editing
	Title       string
	Description string
	Priority    domain.Priority
	Assignee    string
	DueDate     string
}

// TaskForm is the create/edit task overlay.
type TaskForm struct {
	taskID      string
	title       textinput.Model
	description textarea.Model
	assignee    textinput.Model
	dueDate     textinput.Model
	priority    domain.Priority
	focusIndex  int
	errText     string
	styles      *styles.Styles
}

const (
	focusTitle = iota
	focusDescription
	focusAssignee
	focusDueDate
	focusPriority
	taskFormFields
)

// NewTaskForm creates an empty form for a new task.
func NewTaskForm(s *styles.Styles) *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = domain.MaxTaskTitleLen * 2
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Description (optional)..."
	ta.CharLimit = domain.MaxDescriptionLen * 2
	ta.SetWidth(50)
	ta.SetHeight(4)

	as := textinput.New()
	as.Placeholder = "Assignee (optional)..."
	as.CharLimit = domain.MaxAssigneeLen * 2
	as.Width = 50

	dd := textinput.New()
	dd.Placeholder = "Due date YYYY-MM-DD (optional)..."
	dd.CharLimit = 10
	dd.Width = 50

	return &TaskForm{
		title:       ti,
		description: ta,
		assignee:    as,
		dueDate:     dd,
		priority:    domain.PriorityMedium,
		focusIndex:  focusTitle,
		styles:      s,
	}
}

// NewTaskEditForm creates a form pre-filled from an existing task.
func NewTaskEditForm(t domain.Task, s *styles.Styles) *TaskForm {
	f := NewTaskForm(s)
	f.taskID = t.ID
	f.title.SetValue(t.Title)
	f.description.SetValue(t.Description)
	f.assignee.SetValue(t.Assignee)
	f.dueDate.SetValue(t.DueDate)
	f.priority = t.Priority
	return f
}

// SetError shows a validation message inside the form. The controller
// calls this when the store rejects a submit, keeping the form open so
// nothing the user typed is lost.
func (f *TaskForm) SetError(msg string) {
	f.errText = msg
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (*TaskForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % taskFormFields
			} else {
				f.focusIndex = (f.focusIndex - 1 + taskFormFields) % taskFormFields
			}
			f.refocus()
			return f, nil

		case "enter":
			if f.focusIndex == focusPriority {
				return f, f.submit()
			}
		}

		// Priority cycles with h/l or arrows when focused
		if f.focusIndex == focusPriority {
			switch msg.String() {
			case "left", "h":
				f.priority = prevPriority(f.priority)
				return f, nil
			case "right", "l", " ":
				f.priority = nextPriority(f.priority)
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	case focusAssignee:
		f.assignee, cmd = f.assignee.Update(msg)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
	}
	return f, cmd
}

func (f *TaskForm) refocus() {
	f.title.Blur()
	f.description.Blur()
	f.assignee.Blur()
	f.dueDate.Blur()
	switch f.focusIndex {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	case focusAssignee:
		f.assignee.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	}
}

func (f *TaskForm) submit() tea.Cmd {
	title := strings.TrimSpace(f.title.Value())
	msg := TaskSubmittedMsg{
		TaskID:      f.taskID,
		Title:       title,
		Description: f.description.Value(),
		Priority:    f.priority,
		Assignee:    strings.TrimSpace(f.assignee.Value()),
		DueDate:     strings.TrimSpace(f.dueDate.Value()),
	}
	return func() tea.Msg { return msg }
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	heading := "New Task"
	if f.taskID != "" {
		heading = "Edit Task"
	}
	b.WriteString(f.styles.OverlayTitle.Render(heading))
	b.WriteString("\n")

	b.WriteString(f.styles.FieldLabel.Render("Title"))
	b.WriteString("\n" + f.title.View() + "\n\n")

	b.WriteString(f.styles.FieldLabel.Render("Description"))
	b.WriteString("\n" + f.description.View() + "\n\n")

	b.WriteString(f.styles.FieldLabel.Render("Assignee"))
	b.WriteString("\n" + f.assignee.View() + "\n\n")

	b.WriteString(f.styles.FieldLabel.Render("Due date"))
	b.WriteString("\n" + f.dueDate.View() + "\n\n")

	priorityLabel := "Priority: "
	if f.focusIndex == focusPriority {
		priorityLabel = "Priority: ◀ "
	}
	badge := f.styles.PriorityBadge(f.priority).Render(f.priority.String())
	line := lipgloss.JoinHorizontal(lipgloss.Left, f.styles.FieldLabel.Render(priorityLabel), badge)
	if f.focusIndex == focusPriority {
		line += " ▶"
	}
	b.WriteString(line + "\n")

	if f.errText != "" {
		b.WriteString("\n" + f.styles.FieldError.Render(f.errText) + "\n")
	}

	b.WriteString("\n" + f.styles.StatusHint.Render("tab: next field • ctrl+s: save • esc: cancel"))

	return f.styles.Overlay.Render(b.String())
}

func nextPriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityLow:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityHigh
	default:
		return domain.PriorityLow
	}
}

func prevPriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityHigh:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityLow
	default:
		return domain.PriorityHigh
	}
}
