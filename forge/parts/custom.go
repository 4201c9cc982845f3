package parts

import (
	"github.com/partforge/mechdraw"
)

func init() {
	Register("custom", generateCustom)
}

// generateCustom replays a user-supplied path program. The "program"
// parameter is a list of operation records as decoded from JSON; each record
// names an op and carries its numeric args and, for set_layer, a layer name.
func generateCustom(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "custom"
	raw, ok := p["program"]
	if !ok {
		return nil, paramErrorf(part, "program", "required field missing")
	}
	prog, err := decodeProgram(raw)
	if err != nil {
		return nil, err
	}
	if len(prog) == 0 {
		return nil, paramErrorf(part, "program", "program is empty")
	}

	t := mechdraw.NewTurtle()
	if err := t.Run(prog); err != nil {
		return nil, err
	}
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}
	d := mechdraw.NewDrawing()
	d.Add(ents...)
	return d, nil
}

// decodeProgram converts the loosely typed decode of a JSON program into Op
// records. It accepts []mechdraw.Op directly for callers constructing
// programs in code.
func decodeProgram(raw any) ([]mechdraw.Op, error) {
	const part = "custom"
	if prog, ok := raw.([]mechdraw.Op); ok {
		return prog, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, paramErrorf(part, "program", "must be a list of operations, got %T", raw)
	}
	prog := make([]mechdraw.Op, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, paramErrorf(part, "program", "op %d: expected an object, got %T", i, item)
		}
		fields := mechdraw.Params(rec)
		name, ok := fields.String("op")
		if !ok {
			return nil, paramErrorf(part, "program", "op %d: missing op name", i)
		}
		op := mechdraw.Op{Name: name}
		if s, ok := fields.String("str"); ok {
			op.Str = s
		}
		if rawArgs, ok := rec["args"]; ok {
			argList, ok := rawArgs.([]any)
			if !ok {
				return nil, paramErrorf(part, "program", "op %d: args must be a list, got %T", i, rawArgs)
			}
			op.Args = make([]float32, len(argList))
			for j, a := range argList {
				v, ok := mechdraw.Params{"v": a}.Float("v")
				if !ok {
					return nil, paramErrorf(part, "program", "op %d: arg %d is not a number: %v", i, j, a)
				}
				op.Args[j] = v
			}
		}
		prog = append(prog, op)
	}
	return prog, nil
}
