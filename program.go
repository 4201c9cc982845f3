package mechdraw

import "fmt"

// Op is one recorded path-engine operation. Numeric operands live in Args
// and the single string operand of set_layer lives in Str. A sequence of Ops
// is the wire form of a user-programmed custom shape: replaying it through a
// Turtle produces exactly the entities the equivalent direct calls would.
type Op struct {
	Name string    `json:"op" yaml:"op"`
	Args []float32 `json:"args,omitempty" yaml:"args,omitempty"`
	Str  string    `json:"str,omitempty" yaml:"str,omitempty"`
}

// Op names understood by Run.
const (
	OpForward    = "forward"
	OpTurn       = "turn"
	OpArc        = "arc"
	OpPenUp      = "pen_up"
	OpPenDown    = "pen_down"
	OpMoveTo     = "move_to"
	OpSetHeading = "set_heading"
	OpSetLayer   = "set_layer"
	OpCircle     = "circle"
	OpRectangle  = "rectangle"
	OpPolygon    = "polygon"
	OpSlot       = "slot"
)

var opArity = map[string]int{
	OpForward:    1,
	OpTurn:       1,
	OpArc:        2,
	OpPenUp:      0,
	OpPenDown:    0,
	OpMoveTo:     2,
	OpSetHeading: 1,
	OpSetLayer:   0,
	OpCircle:     1,
	OpRectangle:  2,
	OpPolygon:    2,
	OpSlot:       2,
}

// Run replays a literal operation sequence on the cursor. Replay is
// deterministic: the same program always yields bit-identical entities. The
// first malformed op aborts the replay.
func (t *Turtle) Run(prog []Op) error {
	for i, op := range prog {
		arity, known := opArity[op.Name]
		if !known {
			return &GeometryError{Op: "Run", Reason: fmt.Sprintf("op %d: unknown operation %q", i, op.Name)}
		}
		if len(op.Args) != arity {
			return &GeometryError{
				Op:     "Run",
				Reason: fmt.Sprintf("op %d: %s takes %d args, got %d", i, op.Name, arity, len(op.Args)),
			}
		}
		switch op.Name {
		case OpForward:
			t.Forward(op.Args[0])
		case OpTurn:
			t.Turn(op.Args[0])
		case OpArc:
			t.Arc(op.Args[0], op.Args[1])
		case OpPenUp:
			t.PenUp()
		case OpPenDown:
			t.PenDown()
		case OpMoveTo:
			t.MoveTo(op.Args[0], op.Args[1])
		case OpSetHeading:
			t.SetHeading(op.Args[0])
		case OpSetLayer:
			t.SetLayer(op.Str)
		case OpCircle:
			t.Circle(op.Args[0])
		case OpRectangle:
			t.Rectangle(op.Args[0], op.Args[1])
		case OpPolygon:
			t.RegularPolygon(int(op.Args[0]), op.Args[1])
		case OpSlot:
			t.Slot(op.Args[0], op.Args[1])
		}
	}
	return t.Err()
}
