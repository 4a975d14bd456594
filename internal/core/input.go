package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - cursor up
	ActionDown           // S, J, Down arrow - cursor down
	ActionLeft           // A, H, Left arrow - cursor left
	ActionRight          // D, L, Right arrow - cursor right
	ActionConfirm        // Enter, Space - commit the move under the cursor
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - start a new race
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the last mouse position seen during a frame, in screen cells.
type Pointer struct {
	X, Y    int
	Moved   bool // Pointer moved this frame
	Clicked bool // Primary button was pressed this frame
}

// Active reports whether the pointer did anything this frame.
func (p Pointer) Active() bool {
	return p.Moved || p.Clicked
}

// InputFrame represents the input collected during one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Repeats counts how many times each action was triggered, so quick
	// cursor taps between ticks are not lost.
	Repeats map[Action]int

	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Repeats: make(map[Action]int),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if f.Repeats == nil {
		f.Repeats = make(map[Action]int)
	}
	f.Actions[a] = true
	f.Repeats[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Repeats == nil {
		return 0
	}
	return f.Repeats[a]
}

// PointAt records a pointer position; clicked marks a primary button press.
// Once a frame holds a click, later motion does not move the pointer off it.
func (f *InputFrame) PointAt(x, y int, clicked bool) {
	if f.Pointer.Clicked && !clicked {
		return
	}
	f.Pointer.X = x
	f.Pointer.Y = y
	f.Pointer.Moved = true
	if clicked {
		f.Pointer.Clicked = true
	}
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Repeats {
		delete(f.Repeats, k)
	}
	f.Pointer = Pointer{}
}
