// Package app contains the main application model and TEA implementation.
//
// The model owns the single current board snapshot, the transient drag
// state and the auto-save debouncer. Mutations go through the board
// store's operations and replace the snapshot wholesale; every successful
// mutation re-arms the debouncer.
package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"boardkit/internal/board"
	"boardkit/internal/config"
	"boardkit/internal/domain"
	"boardkit/internal/drag"
	"boardkit/internal/persist"
	uiboard "boardkit/internal/ui/board"
	"boardkit/internal/ui/overlay"
	"boardkit/internal/ui/styles"
)

// pendingDelete remembers what a confirmation dialog is about to delete.
type pendingDelete struct {
	kind string // "task", "column", "board"
	id   string
}

// Model is the main application state
type Model struct {
	// Core data
	board board.Board
	drag  *drag.Machine

	// Persistence
	adapter *persist.Adapter
	saver   *persist.Debouncer

	// Navigation
	cursor uiboard.Cursor

	// View queries; these shape what renders, never what is stored.
	sort        domain.Sort
	filter      *domain.Filter
	searching   bool
	searchInput textinput.Model

	// Overlays (at most one active)
	taskForm   *overlay.TaskForm
	columnForm *overlay.ColumnForm
	confirm    *overlay.ConfirmDialog
	deleting   pendingDelete

	// Column the next new task lands in
	targetColumn string

	// UI state
	statusMsg string
	errMsg    string
	width     int
	height    int

	styles *styles.Styles
	cfg    *config.Config
	prefs  config.Prefs
	logger *slog.Logger
	now    func() time.Time
}

// NewModel builds the controller. The stored board is loaded if present;
// a missing or corrupt snapshot means starting empty, never a crash.
func NewModel(cfg *config.Config, adapter *persist.Adapter, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	b, ok := adapter.Load()
	if !ok {
		b = board.Empty()
	}

	prefs := adapter.LoadPrefs()

	si := textinput.New()
	si.Placeholder = "search..."
	si.Prompt = "/"
	si.CharLimit = 64

	m := Model{
		board:       b,
		drag:        &drag.Machine{},
		adapter:     adapter,
		sort:        sortFromPrefs(prefs),
		filter:      domain.NewFilter(),
		searchInput: si,
		styles:      styles.New(),
		cfg:         cfg,
		prefs:       prefs,
		logger:      logger,
		now:         time.Now,
	}
	m.saver = persist.NewDebouncer(
		time.Duration(cfg.AutosaveMs)*time.Millisecond,
		func(snapshot board.Board) {
			if !adapter.Save(snapshot) {
				logger.Warn("auto-save dropped, will retry on next change")
			}
		},
	)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case overlay.CloseMsg:
		m.taskForm = nil
		m.columnForm = nil
		m.confirm = nil
		m.deleting = pendingDelete{}
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmit(msg)

	case overlay.ColumnSubmittedMsg:
		return m.handleColumnSubmit(msg)

	case overlay.ConfirmResultMsg:
		return m.handleConfirm(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An active overlay captures all keys.
	if m.taskForm != nil {
		form, cmd := m.taskForm.Update(msg)
		m.taskForm = form
		return m, cmd
	}
	if m.columnForm != nil {
		form, cmd := m.columnForm.Update(msg)
		m.columnForm = form
		return m, cmd
	}
	if m.confirm != nil {
		dialog, cmd := m.confirm.Update(msg)
		m.confirm = dialog
		return m, cmd
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.drag.Phase() != drag.Idle {
		return m.handleDragKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		// Write anything still pending before the timer is torn down.
		m.saver.Flush()
		m.saver.Cancel()
		m.adapter.SavePrefs(m.prefs)
		return m, tea.Quit

	case "h", "left":
		if m.cursor.Column > 0 {
			m.cursor.Column--
			m.cursor.Task = 0
		}
		return m, nil

	case "l", "right":
		if m.cursor.Column < len(m.board.ColumnOrder)-1 {
			m.cursor.Column++
			m.cursor.Task = 0
		}
		return m, nil

	case "j", "down":
		if col, ok := m.currentColumn(); ok && m.cursor.Task < len(m.visibleTasks(col.ID))-1 {
			m.cursor.Task++
		}
		return m, nil

	case "k", "up":
		if m.cursor.Task > 0 {
			m.cursor.Task--
		}
		return m, nil

	case " ":
		// Pick up the task under the cursor; h/l then hover columns and
		// space/enter drops.
		if task, ok := m.currentTask(); ok {
			m.drag.Start(task.ID, drag.ItemTask)
			m.statusMsg = "moving: " + task.Title
		}
		return m, nil

	case "H":
		return m.quickMove(-1), nil

	case "L":
		return m.quickMove(+1), nil

	case "J":
		return m.moveWithinColumn(+1), nil

	case "K":
		return m.moveWithinColumn(-1), nil

	case "[":
		return m.shiftColumn(-1), nil

	case "]":
		return m.shiftColumn(+1), nil

	case "a":
		if col, ok := m.currentColumn(); ok {
			m.targetColumn = col.ID
			m.taskForm = overlay.NewTaskForm(m.styles)
			return m, m.taskForm.Init()
		}
		m.errMsg = "add a column before adding tasks"
		return m, nil

	case "e":
		if task, ok := m.currentTask(); ok {
			m.taskForm = overlay.NewTaskEditForm(task, m.styles)
			return m, m.taskForm.Init()
		}
		return m, nil

	case "c":
		m.columnForm = overlay.NewColumnForm(m.styles)
		return m, m.columnForm.Init()

	case "r":
		if col, ok := m.currentColumn(); ok {
			m.columnForm = overlay.NewColumnEditForm(col, m.styles)
			return m, m.columnForm.Init()
		}
		return m, nil

	case "d":
		if task, ok := m.currentTask(); ok {
			m.deleting = pendingDelete{kind: "task", id: task.ID}
			m.confirm = overlay.NewConfirmDialog("Delete task?", task.Title, m.styles)
		}
		return m, nil

	case "D":
		if col, ok := m.currentColumn(); ok {
			m.deleting = pendingDelete{kind: "column", id: col.ID}
			m.confirm = overlay.NewConfirmDialog(
				"Delete column?",
				col.Title+" and every task in it",
				m.styles,
			)
		}
		return m, nil

	case "X":
		m.deleting = pendingDelete{kind: "board"}
		m.confirm = overlay.NewConfirmDialog("Clear board?", "all columns and tasks", m.styles)
		return m, nil

	case "s":
		m.cycleSortField()
		return m, nil

	case "S":
		if m.sort.Field != "" {
			m.sort.Toggle(m.sort.Field)
			m.syncSortPrefs()
		}
		return m, nil

	case "o":
		m.filter.OverdueOnly = !m.filter.OverdueOnly
		m.clampCursor()
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.filter.SearchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// handleDragKey drives the drag protocol while a task is held. Hovering a
// column is drag-enter; hovering a different one retargets directly;
// dropping feeds the board's move operation.
func (m Model) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.drag.Cancel()
		m.statusMsg = ""
		return m, nil

	case "h", "left":
		if m.cursor.Column > 0 {
			m.cursor.Column--
			m.cursor.Task = 0
		}
		if col, ok := m.currentColumn(); ok {
			m.drag.Enter(col.ID)
		}
		return m, nil

	case "l", "right":
		if m.cursor.Column < len(m.board.ColumnOrder)-1 {
			m.cursor.Column++
			m.cursor.Task = 0
		}
		if col, ok := m.currentColumn(); ok {
			m.drag.Enter(col.ID)
		}
		return m, nil

	case " ", "enter":
		taskID, targetID, ok := m.drag.Drop()
		m.statusMsg = ""
		if !ok {
			// Drop with no active target resets the gesture, nothing more.
			return m, nil
		}
		m = m.mutate(func(b board.Board) (board.Board, error) {
			return b.MoveTask(taskID, targetID, m.now())
		})
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

func (m Model) handleTaskSubmit(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	var err error
	next := m.board

	if msg.TaskID == "" {
		next, _, err = m.board.AddTask(m.targetColumn, board.TaskDraft{
			Title:       msg.Title,
			Description: msg.Description,
			Priority:    msg.Priority,
			Assignee:    msg.Assignee,
			DueDate:     msg.DueDate,
		}, m.now())
	} else {
		next, err = m.board.UpdateTask(msg.TaskID, domain.TaskPatch{
			Title:       &msg.Title,
			Description: &msg.Description,
			Priority:    &msg.Priority,
			Assignee:    &msg.Assignee,
			DueDate:     &msg.DueDate,
		}, m.now())
	}

	if err != nil {
		// Keep the form open with the message; the user's input survives.
		m.taskForm.SetError(userMessage(err))
		return m, nil
	}

	m.board = next
	m.saver.Trigger(m.board)
	m.taskForm = nil
	m.errMsg = ""
	return m, nil
}

func (m Model) handleColumnSubmit(msg overlay.ColumnSubmittedMsg) (tea.Model, tea.Cmd) {
	var err error
	next := m.board

	if msg.ColumnID == "" {
		next, _, err = m.board.AddColumn(board.ColumnDraft{
			Title: msg.Title,
			Color: msg.Color,
		}, m.now())
	} else {
		next, err = m.board.UpdateColumn(msg.ColumnID, domain.ColumnPatch{
			Title: &msg.Title,
			Color: &msg.Color,
		}, m.now())
	}

	if err != nil {
		m.columnForm.SetError(userMessage(err))
		return m, nil
	}

	m.board = next
	m.saver.Trigger(m.board)
	m.columnForm = nil
	m.errMsg = ""
	return m, nil
}

func (m Model) handleConfirm(msg overlay.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	deleting := m.deleting
	m.confirm = nil
	m.deleting = pendingDelete{}
	if !msg.Confirmed {
		return m, nil
	}

	switch deleting.kind {
	case "task":
		m = m.mutate(func(b board.Board) (board.Board, error) {
			return b.DeleteTask(deleting.id, m.now())
		})
	case "column":
		m = m.mutate(func(b board.Board) (board.Board, error) {
			return b.DeleteColumn(deleting.id, m.now())
		})
	case "board":
		// A wipe cancels any pending auto-save so stale data is never
		// written back, then persists the empty board immediately.
		m.saver.Cancel()
		m.board = m.board.Clear(m.now())
		m.adapter.Save(m.board)
	}
	m.clampCursor()
	return m, nil
}

// mutate applies a board operation. On success the snapshot is replaced
// and the auto-save window re-arms; on failure the prior snapshot stays
// and the error is surfaced in the status bar.
func (m Model) mutate(op func(board.Board) (board.Board, error)) Model {
	next, err := op(m.board)
	if err != nil {
		m.errMsg = userMessage(err)
		return m
	}
	m.board = next
	m.errMsg = ""
	m.saver.Trigger(m.board)
	return m
}

// handleSearchKey edits the live search query. The filter tracks every
// keystroke; esc clears it, enter keeps it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.SearchQuery = ""
		m.clampCursor()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.SearchQuery = m.searchInput.Value()
	m.clampCursor()
	return m, cmd
}

// cycleSortField steps none → priority → due → updated → none, always
// starting ascending.
func (m *Model) cycleSortField() {
	switch m.sort.Field {
	case "":
		m.sort = domain.Sort{Field: domain.SortByPriority}
	case domain.SortByPriority:
		m.sort = domain.Sort{Field: domain.SortByDueDate}
	case domain.SortByDueDate:
		m.sort = domain.Sort{Field: domain.SortByUpdated}
	default:
		m.sort = domain.Sort{}
	}
	m.syncSortPrefs()
	m.clampCursor()
}

func (m *Model) syncSortPrefs() {
	m.prefs.SortField = string(m.sort.Field)
	m.prefs.SortDesc = m.sort.Order == domain.SortDesc
}

func sortFromPrefs(p config.Prefs) domain.Sort {
	s := domain.Sort{Field: domain.SortField(p.SortField)}
	if p.SortDesc {
		s.Order = domain.SortDesc
	}
	return s
}

// visibleTasks is the column's task list as the user currently sees it,
// with the active filter and sort applied. Cursor indices address this
// list, not the stored order.
func (m Model) visibleTasks(columnID string) []domain.Task {
	tasks, _ := m.board.TasksForColumn(columnID)
	tasks = m.filter.Apply(tasks, m.now)
	return m.sort.Apply(tasks)
}

// viewReordered reports whether the visible order can differ from the
// stored order, which makes positional reordering ambiguous.
func (m Model) viewReordered() bool {
	return m.sort.Field != "" || m.filter.IsActive()
}

// quickMove sends the task under the cursor to the adjacent column in one
// keystroke. It runs the same grab/hover/drop gesture, just without the
// intermediate keys.
func (m Model) quickMove(delta int) Model {
	task, ok := m.currentTask()
	if !ok {
		return m
	}
	j := m.cursor.Column + delta
	if j < 0 || j >= len(m.board.ColumnOrder) {
		return m
	}

	m.drag.Start(task.ID, drag.ItemTask)
	m.drag.Enter(m.board.ColumnOrder[j])
	taskID, targetID, ok := m.drag.Drop()
	if !ok {
		return m
	}

	m = m.mutate(func(b board.Board) (board.Board, error) {
		return b.MoveTask(taskID, targetID, m.now())
	})
	if m.errMsg == "" {
		m.cursor.Column = j
	}
	m.clampCursor()
	return m
}

func (m Model) moveWithinColumn(delta int) Model {
	if m.viewReordered() {
		m.errMsg = "clear sort and filters before reordering"
		return m
	}
	col, ok := m.currentColumn()
	if !ok {
		return m
	}
	task, ok := m.currentTask()
	if !ok {
		return m
	}
	newIndex := m.cursor.Task + delta
	m = m.mutate(func(b board.Board) (board.Board, error) {
		return b.MoveTaskWithinColumn(col.ID, task.ID, newIndex, m.now())
	})
	if m.errMsg == "" {
		if newIndex < 0 {
			newIndex = 0
		}
		if newIndex > len(col.TaskIDs)-1 {
			newIndex = len(col.TaskIDs) - 1
		}
		m.cursor.Task = newIndex
	}
	return m
}

// shiftColumn moves the current column left or right in the board order.
func (m Model) shiftColumn(delta int) Model {
	i := m.cursor.Column
	j := i + delta
	if i < 0 || i >= len(m.board.ColumnOrder) || j < 0 || j >= len(m.board.ColumnOrder) {
		return m
	}
	order := make([]string, len(m.board.ColumnOrder))
	copy(order, m.board.ColumnOrder)
	order[i], order[j] = order[j], order[i]
	m = m.mutate(func(b board.Board) (board.Board, error) {
		return b.ReorderColumns(order, m.now())
	})
	if m.errMsg == "" {
		m.cursor.Column = j
	}
	return m
}

func (m Model) currentColumn() (domain.Column, bool) {
	if m.cursor.Column < 0 || m.cursor.Column >= len(m.board.ColumnOrder) {
		return domain.Column{}, false
	}
	return m.board.GetColumn(m.board.ColumnOrder[m.cursor.Column])
}

func (m Model) currentTask() (domain.Task, bool) {
	col, ok := m.currentColumn()
	if !ok {
		return domain.Task{}, false
	}
	tasks := m.visibleTasks(col.ID)
	if m.cursor.Task < 0 || m.cursor.Task >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor.Task], true
}

// clampCursor keeps the cursor on a real column/task after a mutation
// changed the board shape.
func (m *Model) clampCursor() {
	if m.cursor.Column >= len(m.board.ColumnOrder) {
		m.cursor.Column = len(m.board.ColumnOrder) - 1
	}
	if m.cursor.Column < 0 {
		m.cursor.Column = 0
	}
	if col, ok := m.currentColumn(); ok {
		if n := len(m.visibleTasks(col.ID)); m.cursor.Task >= n {
			m.cursor.Task = n - 1
		}
	}
	if m.cursor.Task < 0 {
		m.cursor.Task = 0
	}
}

// userMessage flattens store errors into a status-bar friendly line.
func userMessage(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr.Error()
	}
	return err.Error()
}
