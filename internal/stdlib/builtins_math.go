package stdlib

import (
	"math"

	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/interp"
	"github.com/cwbudde/amta/internal/object"
	"github.com/cwbudde/amta/internal/token"
)

func hostTypeErrorf(format string, args ...interface{}) error {
	return amtaerr.New(amtaerr.TypeError, token.Position{}, "", format, args...)
}

// registerMath installs pow(a, b) and the three range() overloads.
func registerMath(e *interp.Evaluator) {
	e.Register("pow", &object.Function{
		Params: []object.Param{param("a", object.NumberKind), param("b", object.NumberKind)},
		Action: func(s object.HostScope) (object.Value, error) {
			a := s.Get("a").(object.Number).Value
			b := s.Get("b").(object.Number).Value
			return object.Number{Value: math.Pow(a, b)}, nil
		},
	})

	// range is overloaded by arity (spec.md §6: range(stop),
	// range(start, stop), range(start, stop, step)), which the
	// general fixed-parameter-list host-callable ABI (§4.7) can't
	// express under one name — so it is registered as Variadic
	// (see object.VariadicAction) rather than through the usual
	// Params/Action pair.
	e.Register("range", &object.Function{
		Variadic: func(args []object.Value) (object.Value, error) {
			start, stop, step := 0.0, 0.0, 1.0
			asNumber := func(v object.Value) (float64, bool) {
				n, ok := v.(object.Number)
				return n.Value, ok
			}

			switch len(args) {
			case 1:
				v, ok := asNumber(args[0])
				if !ok {
					return nil, hostTypeErrorf("range() requires number arguments, got %s", args[0].String())
				}
				stop = v
			case 2:
				sv, sok := asNumber(args[0])
				ev, eok := asNumber(args[1])
				if !sok || !eok {
					return nil, hostTypeErrorf("range() requires number arguments")
				}
				start, stop = sv, ev
			case 3:
				sv, sok := asNumber(args[0])
				ev, eok := asNumber(args[1])
				pv, pok := asNumber(args[2])
				if !sok || !eok || !pok {
					return nil, hostTypeErrorf("range() requires number arguments")
				}
				start, stop, step = sv, ev, pv
			default:
				return nil, amtaerr.New(amtaerr.ArityError, token.Position{}, "",
					"range() expects 1, 2, or 3 arguments, got %d", len(args))
			}

			if step == 0 {
				return nil, hostTypeErrorf("range() step must not be 0")
			}

			var elems []object.Value
			if step > 0 {
				for v := start; v < stop; v += step {
					elems = append(elems, object.Number{Value: v})
				}
			} else {
				for v := start; v > stop; v += step {
					elems = append(elems, object.Number{Value: v})
				}
			}
			return object.NewArray(elems), nil
		},
	})
}
