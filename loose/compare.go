package loose

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Numeric converts v into an exact decimal when the admission policy allows
// it. The boolean result reports admission; callers must skip values that
// return false rather than treating them as zero.
func Numeric(v any) (decimal.Decimal, bool) {
	if v == nil {
		return decimal.Decimal{}, false
	}
	if d, ok := v.(decimal.Decimal); ok {
		return d, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return parse(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return parse(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}
		return parse(strconv.FormatFloat(f, 'f', -1, 64))
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return decimal.Decimal{}, false
		}
		return parse(s)
	default:
		return decimal.Decimal{}, false
	}
}

func parse(s string) (decimal.Decimal, bool) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Compare orders a and b when both are admitted by Numeric, returning the
// usual negative/zero/positive result. The boolean result is false when
// either side is not loosely numeric.
func Compare(a, b any) (int, bool) {
	da, ok := Numeric(a)
	if !ok {
		return 0, false
	}
	db, ok := Numeric(b)
	if !ok {
		return 0, false
	}
	return da.Cmp(db), true
}

// Equal reports loose equality: exact decimal equality when both sides are
// loosely numeric, reflect.DeepEqual otherwise.
func Equal(a, b any) bool {
	if c, ok := Compare(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}
