package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachineStartsIdle(t *testing.T) {
	var m Machine
	assert.Equal(t, Idle, m.Phase())
}

func TestDragLifecycle(t *testing.T) {
	var m Machine

	m.Start("t-1", ItemTask)
	assert.Equal(t, Dragging, m.Phase())
	id, typ := m.Item()
	assert.Equal(t, "t-1", id)
	assert.Equal(t, ItemTask, typ)

	m.Enter("col-a")
	assert.Equal(t, OverTarget, m.Phase())
	assert.Equal(t, "col-a", m.Target())

	// Entering a different zone retargets directly, no intermediate idle.
	m.Enter("col-b")
	assert.Equal(t, OverTarget, m.Phase())
	assert.Equal(t, "col-b", m.Target())

	m.Leave()
	assert.Equal(t, Dragging, m.Phase())
	assert.Equal(t, "", m.Target())
	id, _ = m.Item()
	assert.Equal(t, "t-1", id, "item retained after leaving a target")

	m.Enter("col-b")
	itemID, targetID, ok := m.Drop()
	assert.True(t, ok)
	assert.Equal(t, "t-1", itemID)
	assert.Equal(t, "col-b", targetID)
	assert.Equal(t, Idle, m.Phase())
}

func TestDropWithoutTargetIsNoOp(t *testing.T) {
	var m Machine
	m.Start("t-1", ItemTask)

	_, _, ok := m.Drop()
	assert.False(t, ok)
	assert.Equal(t, Idle, m.Phase())
}

func TestDropWhileIdleIsNoOp(t *testing.T) {
	var m Machine
	_, _, ok := m.Drop()
	assert.False(t, ok)
	assert.Equal(t, Idle, m.Phase())
}

func TestCancelFromAnyState(t *testing.T) {
	var m Machine

	m.Cancel()
	assert.Equal(t, Idle, m.Phase())

	m.Start("t-1", ItemTask)
	m.Cancel()
	assert.Equal(t, Idle, m.Phase())

	m.Start("t-1", ItemTask)
	m.Enter("col-a")
	m.Cancel()
	assert.Equal(t, Idle, m.Phase())
	assert.Equal(t, "", m.Target())
}

func TestNewStartSupersedesStaleState(t *testing.T) {
	var m Machine
	m.Start("t-1", ItemTask)
	m.Enter("col-a")

	m.Start("t-2", ItemColumn)
	assert.Equal(t, Dragging, m.Phase())
	id, typ := m.Item()
	assert.Equal(t, "t-2", id)
	assert.Equal(t, ItemColumn, typ)
	assert.Equal(t, "", m.Target(), "stale target cleared")
}

func TestEnterWhileIdleIsIgnored(t *testing.T) {
	var m Machine
	m.Enter("col-a")
	assert.Equal(t, Idle, m.Phase())
	assert.Equal(t, "", m.Target())
}

func TestLeaveWhileDraggingIsIgnored(t *testing.T) {
	var m Machine
	m.Start("t-1", ItemTask)
	m.Leave()
	assert.Equal(t, Dragging, m.Phase())
}
