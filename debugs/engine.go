package debugs

import (
	"fmt"

	"github.com/reusee/taibf/bfvm"
)

// EngineGlobals exposes the observable state of engine for inspection.
func EngineGlobals(engine *bfvm.Engine, source string) map[string]any {
	cells := engine.Cells()
	return map[string]any{
		"source":  source,
		"state":   engine.State(),
		"policy":  engine.Policy(),
		"pointer": engine.Pointer(),
		"cursor":  engine.Cursor(),
		"cells":   cells,
		"tokens":  engine.Tokens(),
		"cell": func(i int) (int, error) {
			if i < 0 || i >= len(cells) {
				return 0, fmt.Errorf("cell %d out of range [0, %d)", i, len(cells))
			}
			return int(cells[i]), nil
		},
	}
}
