package stdlib

import (
	"fmt"

	"github.com/cwbudde/amta/internal/interp"
	"github.com/cwbudde/amta/internal/object"
)

// registerCore installs print(value), the single I/O primitive the
// language exposes.
func registerCore(e *interp.Evaluator) {
	e.Register("print", &object.Function{
		Params: []object.Param{param("value", object.AnyKind)},
		Action: func(s object.HostScope) (object.Value, error) {
			if e.Output != nil {
				fmt.Fprint(e.Output, s.Get("value").String())
			}
			return object.Nil{}, nil
		},
	})
}
