package snfmt

import (
	"fmt"
	"reflect"
	"unsafe"
)

// argList hands out the variadic operands in specifier order.
type argList struct {
	args []any
	next int
}

func (a *argList) take() (any, error) {
	if a.next >= len(a.args) {
		return nil, fmt.Errorf("%w: operand %d", ErrMissingArgument, a.next+1)
	}
	v := a.args[a.next]
	a.next++
	return v, nil
}

func (a *argList) typeError(v any, want string) error {
	return fmt.Errorf("%w: operand %d is %T, want %s", ErrArgumentType, a.next, v, want)
}

// integer returns an integer operand sign- or zero-extended to 64 bits.
// Callers truncate it to the operand width of the conversion.
func (a *argList) integer() (int64, error) {
	v, err := a.take()
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), nil
	}
	return 0, a.typeError(v, "integer")
}

// star reads a '*' width or precision, which is a C int.
func (a *argList) star() (int, error) {
	v, err := a.integer()
	if err != nil {
		return 0, err
	}
	return int(int32(v)), nil
}

func (a *argList) string() (string, error) {
	v, err := a.take()
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: operand %d", ErrNilString, a.next)
	case string:
		return x, nil
	case []byte:
		if x == nil {
			return "", fmt.Errorf("%w: operand %d", ErrNilString, a.next)
		}
		return string(x), nil
	case *string:
		if x == nil {
			return "", fmt.Errorf("%w: operand %d", ErrNilString, a.next)
		}
		return *x, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", fmt.Errorf("%w: operand %d", ErrNilString, a.next)
	}
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String(), nil
	case error:
		return x.Error(), nil
	}
	return "", a.typeError(v, "string")
}

// float returns a floating operand as a float64. float32 values are
// promoted, as a C caller's would be.
func (a *argList) float() (float64, error) {
	v, err := a.take()
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	}
	return 0, a.typeError(v, "float")
}

// pointer returns the address held by a pointer-like operand. nil is the
// zero address.
func (a *argList) pointer() (uintptr, error) {
	v, err := a.take()
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case nil:
		return 0, nil
	case uintptr:
		return x, nil
	case unsafe.Pointer:
		return uintptr(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer(), nil
	}
	return 0, a.typeError(v, "pointer")
}
