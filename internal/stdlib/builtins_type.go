package stdlib

import (
	"github.com/cwbudde/amta/internal/interp"
	"github.com/cwbudde/amta/internal/object"
)

// registerType installs typeof(value), ascii(n|s), and isarray(o).
func registerType(e *interp.Evaluator) {
	e.Register("typeof", &object.Function{
		Params: []object.Param{param("value", object.AnyKind)},
		Action: func(s object.HostScope) (object.Value, error) {
			return object.String{Value: s.Get("value").Kind().String()}, nil
		},
	})

	e.Register("ascii", &object.Function{
		Params: []object.Param{param("value", object.AnyKind)},
		Action: func(s object.HostScope) (object.Value, error) {
			switch v := s.Get("value").(type) {
			case object.Number:
				n := int(v.Value)
				if n < 0 || n > 255 || float64(n) != v.Value {
					return object.Nil{}, nil
				}
				return object.String{Value: string([]byte{byte(n)})}, nil
			case object.String:
				if len(v.Value) != 1 {
					return object.Nil{}, nil
				}
				return object.Number{Value: float64(v.Value[0])}, nil
			default:
				return nil, hostTypeErrorf("ascii() requires a number or a single-character string, got %s", v.String())
			}
		},
	})

	e.Register("isarray", &object.Function{
		Params: []object.Param{param("o", object.ObjectKind)},
		Action: func(s object.HostScope) (object.Value, error) {
			obj := s.Get("o").(*object.Object)
			_, ok := object.IsArray(obj)
			return boolValue(ok), nil
		},
	})
}
