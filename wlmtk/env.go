package wlmtk

type CursorType int

const (
	CursorDefault = CursorType(iota)
	CursorMove
	CursorResizeS
	CursorResizeSE
	CursorResizeSW
)

// XCursorName returns the cursor theme name of t
func (t CursorType) XCursorName() string {
	switch t {
	case CursorMove:
		return "move"
	case CursorResizeS:
		return "s-resize"
	case CursorResizeSE:
		return "se-resize"
	case CursorResizeSW:
		return "sw-resize"
	default:
		return "default"
	}
}

// CursorSetter changes the cursor image. Provided by the compositor.
type CursorSetter interface {
	SetCursor(t CursorType)
}

// Env carries compositor facilities to the widgets that need them
type Env struct {
	cursor CursorSetter
}

// NewEnv creates an environment. cursor may be nil.
func NewEnv(cursor CursorSetter) *Env {
	return &Env{cursor: cursor}
}

func (env *Env) SetCursor(t CursorType) {
	if env == nil || env.cursor == nil {
		return
	}
	env.cursor.SetCursor(t)
}
