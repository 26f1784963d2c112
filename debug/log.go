package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/qtree/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr.  Arguments which are trees
// or generic maps and slices are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			args[i] = marshal(a)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = marshal(ir.ToAny(x))
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func marshal(a any) string {
	d, err := json.MarshalIndent(a, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", a)
	}
	return string(d)
}
