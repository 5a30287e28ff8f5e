// Package drag tracks an in-progress drag gesture and turns a drop into a
// board move. The state is transient UI bookkeeping: it is never persisted
// and resets on drop, cancel or teardown.
package drag

// ItemType identifies what kind of entity is being dragged.
type ItemType int

const (
	ItemTask ItemType = iota
	ItemColumn
)

func (t ItemType) String() string {
	return [...]string{"task", "column"}[t]
}

// Phase is the gesture state.
type Phase int

const (
	// Idle means no gesture is active.
	Idle Phase = iota
	// Dragging means an item is held but not over a drop zone.
	Dragging
	// OverTarget means the held item is over a drop-capable zone.
	OverTarget
)

func (p Phase) String() string {
	return [...]string{"idle", "dragging", "over_target"}[p]
}

// Machine is the gesture state machine. Zero value is Idle.
type Machine struct {
	phase    Phase
	itemID   string
	itemType ItemType
	targetID string
}

// Phase returns the current gesture phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Item returns the held item, valid outside Idle.
func (m *Machine) Item() (string, ItemType) {
	return m.itemID, m.itemType
}

// Target returns the current drop target id, valid in OverTarget.
func (m *Machine) Target() string {
	return m.targetID
}

// Start begins a gesture. A new start always supersedes stale state from a
// previous gesture.
func (m *Machine) Start(itemID string, itemType ItemType) {
	m.phase = Dragging
	m.itemID = itemID
	m.itemType = itemType
	m.targetID = ""
}

// Enter records entering a drop-capable zone. Entering a different zone
// while already over one retargets directly, with no intermediate Idle.
// Ignored when no gesture is active.
func (m *Machine) Enter(targetID string) {
	if m.phase == Idle {
		return
	}
	m.phase = OverTarget
	m.targetID = targetID
}

// Leave records leaving the current target. The item stays held.
func (m *Machine) Leave() {
	if m.phase != OverTarget {
		return
	}
	m.phase = Dragging
	m.targetID = ""
}

// Drop ends the gesture. When a target is active it returns the held item
// and the target for the caller to feed into the board's move operation;
// a drop with no active target reports ok=false and is a no-op. Either
// way the machine resets to Idle.
func (m *Machine) Drop() (itemID, targetID string, ok bool) {
	itemID, targetID = m.itemID, m.targetID
	ok = m.phase == OverTarget
	m.reset()
	return itemID, targetID, ok
}

// Cancel abandons the gesture from any state.
func (m *Machine) Cancel() {
	m.reset()
}

func (m *Machine) reset() {
	m.phase = Idle
	m.itemID = ""
	m.targetID = ""
}
