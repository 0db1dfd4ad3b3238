// Package swipe implements the per-task swipe gesture state machine. It
// turns a stream of pointer samples into a horizontal offset with
// rubber-band resistance and, on release, a delete / move / snap-back
// decision. The machine only classifies intent; the actual delete and move
// calls go through the board.
package swipe

import (
	"math"
	"sync"
	"time"
)

// State identifies the phase of one task's gesture machine.
type State int

const (
	// Idle means no gesture is being tracked.
	Idle State = iota

	// Active means a gesture started and samples are being consumed.
	Active

	// SnapBack is the transient release phase for an offset that reached
	// neither threshold; the machine returns straight to Idle.
	SnapBack

	// PendingDelete holds the task off-screen until the grace period
	// elapses or the gesture is cancelled.
	PendingDelete

	// PendingMove holds the offset at the move threshold while the host
	// shows the destination picker.
	PendingMove
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case SnapBack:
		return "snap-back"
	case PendingDelete:
		return "pending-delete"
	case PendingMove:
		return "pending-move"
	default:
		return "unknown"
	}
}

// Decision classifies a finished gesture.
type Decision int

const (
	// DecisionNone means the gesture never locked horizontally.
	DecisionNone Decision = iota

	// DecisionSnapBack means the offset reached neither threshold.
	DecisionSnapBack

	// DecisionDelete means the task should be deleted after the grace
	// period.
	DecisionDelete

	// DecisionMove means the host should show the move-target picker.
	DecisionMove
)

// Options tunes the gesture thresholds.
type Options struct {
	// DeleteThreshold is the rightward offset that commits a delete.
	DeleteThreshold float64

	// MoveThreshold is the leftward (negative) offset that reveals the
	// move picker. Smaller in magnitude than DeleteThreshold: a
	// destructive action takes a longer swipe.
	MoveThreshold float64

	// LockDistance is the displacement needed before the gesture commits
	// to horizontal or vertical.
	LockDistance float64

	// Resistance damps displacement beyond the rubber-band start points.
	Resistance float64

	// OffScreenOffset is the offset applied while a delete is pending.
	OffScreenOffset float64

	// DeleteGrace is how long a pending delete waits before the delete
	// callback fires, leaving room for the exit animation and an undo.
	DeleteGrace time.Duration
}

// DefaultOptions returns the thresholds used by the board UI.
func DefaultOptions() Options {
	return Options{
		DeleteThreshold: 120,
		MoveThreshold:   -80,
		LockDistance:    10,
		Resistance:      0.2,
		OffScreenOffset: 1000,
		DeleteGrace:     300 * time.Millisecond,
	}
}

// Controller runs one gesture machine per task id. Transient per-task state
// (offset, pending action, editing flag) lives here, keyed by id, never on
// the task entity itself.
type Controller struct {
	mu       sync.Mutex
	opts     Options
	onDelete func(id string)
	items    map[string]*item
}

type item struct {
	state    State
	startX   float64
	startY   float64
	locked   bool
	vertical bool
	editing  bool
	offset   float64
	timer    *time.Timer
}

// NewController creates a controller. onDelete runs once a pending delete's
// grace period elapses without a cancel; it may be nil if the host invokes
// deletes itself.
func NewController(opts Options, onDelete func(id string)) *Controller {
	return &Controller{
		opts:     opts,
		onDelete: onDelete,
		items:    make(map[string]*item),
	}
}

// SetEditing marks a task as being edited. Editing suppresses all gesture
// handling for that task; entering edit mode resets any tracked gesture.
func (c *Controller) SetEditing(id string, editing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it := c.item(id)
	it.editing = editing
	if editing {
		c.reset(it)
	}
}

// Begin starts tracking a gesture at (x, y). Ignored while the task is
// being edited or while a delete is pending for it.
func (c *Controller) Begin(id string, x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it := c.item(id)
	if it.editing || it.state == PendingDelete {
		return
	}
	it.state = Active
	it.startX, it.startY = x, y
	it.locked = false
	it.vertical = false
	it.offset = 0
}

// Move feeds a pointer sample. Until the lock distance is reached the
// sample only accumulates displacement; past it, the gesture is either
// horizontal (offset tracks dx with rubber-banding) or vertical (inert for
// the rest of the gesture).
func (c *Controller) Move(id string, x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok || it.state != Active {
		return
	}

	dx := x - it.startX
	dy := y - it.startY

	if !it.locked && !it.vertical {
		if dx*dx+dy*dy < c.opts.LockDistance*c.opts.LockDistance {
			return
		}
		if math.Abs(dx) > math.Abs(dy) {
			it.locked = true
		} else {
			it.vertical = true
		}
	}
	if it.vertical {
		return
	}

	it.offset = c.damp(dx)
}

// End finishes the gesture and classifies it by the final offset. A delete
// decision parks the task off-screen and schedules the delete callback
// after the grace period; a move decision snaps the offset to the move
// threshold and waits for ResolveMove or Cancel.
func (c *Controller) End(id string) Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok || it.state != Active {
		return DecisionNone
	}
	if !it.locked {
		c.reset(it)
		return DecisionNone
	}

	switch {
	case it.offset >= c.opts.DeleteThreshold:
		it.state = PendingDelete
		it.offset = c.opts.OffScreenOffset
		if c.onDelete != nil {
			it.timer = time.AfterFunc(c.opts.DeleteGrace, func() { c.fireDelete(id) })
		}
		return DecisionDelete

	case it.offset <= c.opts.MoveThreshold:
		it.state = PendingMove
		it.offset = c.opts.MoveThreshold
		return DecisionMove

	default:
		it.state = SnapBack
		c.reset(it)
		return DecisionSnapBack
	}
}

// Cancel resets a task's machine to idle from any state. A pending
// delete's scheduled callback is stopped, which is the hook an undo
// affordance uses.
func (c *Controller) Cancel(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		return
	}
	c.reset(it)
}

// ResolveMove completes a pending move after the host picked a destination
// bucket. It only resets the machine; the relocation itself goes through
// the board. Reports whether a move was actually pending.
func (c *Controller) ResolveMove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok || it.state != PendingMove {
		return false
	}
	c.reset(it)
	return true
}

// Offset returns the task's current swipe offset.
func (c *Controller) Offset(id string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[id]; ok {
		return it.offset
	}
	return 0
}

// State returns the task's current machine state.
func (c *Controller) State(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[id]; ok {
		return it.state
	}
	return Idle
}

// damp applies rubber-band resistance outside the tracking range. The
// offset tracks dx exactly between 1.5x the move threshold and the delete
// threshold; beyond either point extra displacement is damped by the
// resistance factor.
func (c *Controller) damp(dx float64) float64 {
	if dx > c.opts.DeleteThreshold {
		return c.opts.DeleteThreshold + (dx-c.opts.DeleteThreshold)*c.opts.Resistance
	}
	if low := 1.5 * c.opts.MoveThreshold; dx < low {
		return low + (dx-low)*c.opts.Resistance
	}
	return dx
}

// fireDelete runs when the grace period elapses without a cancel.
func (c *Controller) fireDelete(id string) {
	c.mu.Lock()
	it, ok := c.items[id]
	if !ok || it.state != PendingDelete {
		c.mu.Unlock()
		return
	}
	delete(c.items, id)
	c.mu.Unlock()

	c.onDelete(id)
}

// reset returns a machine to idle. Caller holds c.mu.
func (c *Controller) reset(it *item) {
	if it.timer != nil {
		it.timer.Stop()
		it.timer = nil
	}
	it.state = Idle
	it.offset = 0
	it.locked = false
	it.vertical = false
}

// item returns the machine for id, creating it in the idle state.
func (c *Controller) item(id string) *item {
	it, ok := c.items[id]
	if !ok {
		it = &item{}
		c.items[id] = it
	}
	return it
}
