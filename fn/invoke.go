package fn

import "reflect"

// Invoke calls the named method on target with args and returns the method's
// first result. It reports false, with a nil result, when the target is nil,
// the method does not exist, or the arguments do not fit its signature.
// Methods without results yield (nil, true).
//
// Argument binding is conservative: a supplied argument must be assignable
// to the parameter type, or both must be numeric kinds (in which case Go's
// numeric conversion applies). Variadic methods accept any number of
// trailing arguments of the variadic element type.
func Invoke(target any, method string, args ...any) (any, bool) {
	m, ok := methodOf(target, method)
	if !ok {
		return nil, false
	}
	return call(m, args)
}

// InvokeIf behaves like Invoke but substitutes fallback whenever the call
// cannot be made.
func InvokeIf(target any, method string, fallback any, args ...any) any {
	if res, ok := Invoke(target, method, args...); ok {
		return res
	}
	return fallback
}

// InvokeFirst calls the first of methods that exists on target and accepts
// args, scanning front to back.
func InvokeFirst(target any, methods []string, args ...any) (any, bool) {
	for _, name := range methods {
		if res, ok := Invoke(target, name, args...); ok {
			return res, true
		}
	}
	return nil, false
}

// InvokeLast behaves like InvokeFirst but scans back to front.
func InvokeLast(target any, methods []string, args ...any) (any, bool) {
	for i := len(methods) - 1; i >= 0; i-- {
		if res, ok := Invoke(target, methods[i], args...); ok {
			return res, true
		}
	}
	return nil, false
}

func methodOf(target any, name string) (reflect.Value, bool) {
	if target == nil || name == "" {
		return reflect.Value{}, false
	}
	m := reflect.ValueOf(target).MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	return m, true
}

func call(m reflect.Value, args []any) (any, bool) {
	in, ok := bindArgs(m.Type(), args)
	if !ok {
		return nil, false
	}
	out := m.Call(in)
	if len(out) == 0 {
		return nil, true
	}
	return out[0].Interface(), true
}

func bindArgs(t reflect.Type, args []any) ([]reflect.Value, bool) {
	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, false
		}
	} else if len(args) != numIn {
		return nil, false
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= numIn-1 {
			pt = t.In(numIn - 1).Elem()
		} else {
			pt = t.In(i)
		}
		v, ok := bindArg(arg, pt)
		if !ok {
			return nil, false
		}
		in[i] = v
	}
	return in, true
}

func bindArg(arg any, pt reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice,
			reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(pt), true
		default:
			return reflect.Value{}, false
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(pt) {
		return v, true
	}
	if isNumericKind(v.Kind()) && isNumericKind(pt.Kind()) && v.Type().ConvertibleTo(pt) {
		return v.Convert(pt), true
	}
	return reflect.Value{}, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
