package grid

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies the runtime type carried by a Value
type Kind int

const (
	KindOther Kind = iota
	KindInteger
	KindFloat
	KindText
	KindInstant
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "Other"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindText:
		return "Text"
	case KindInstant:
		return "Instant"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// InstantLayout is the display layout used for Instant values
const InstantLayout = "Mon Jan 02 15:04:05 MST 2006"

// Value is a single grid cell. The zero value is an Other holding nil.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	bits  int // float precision, 32 or 64
	s     string
	t     time.Time
	other interface{}
}

// Row is an ordered sequence of cell values, one per column
type Row []Value

func Int(v int64) Value {
	return Value{kind: KindInteger, i: v}
}

func Float(v float64) Value {
	return Value{kind: KindFloat, f: v, bits: 64}
}

// Float32 keeps single precision for display so 0.1 renders as "0.1"
func Float32(v float32) Value {
	return Value{kind: KindFloat, f: float64(v), bits: 32}
}

func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

func Instant(t time.Time) Value {
	return Value{kind: KindInstant, t: t}
}

func Other(v interface{}) Value {
	return Value{kind: KindOther, other: v}
}

// Of wraps a native Go value in the matching Value kind
func Of(v interface{}) Value {
	switch x := v.(type) {
	case Value:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return fromUint64(x)
	case float32:
		return Float32(x)
	case float64:
		return Float(x)
	case string:
		return Text(x)
	case time.Time:
		return Instant(x)
	case *time.Time:
		if x == nil {
			return Other(nil)
		}
		return Instant(*x)
	default:
		return Other(v)
	}
}

func fromUint64(v uint64) Value {
	if v > math.MaxInt64 {
		return Float(float64(v))
	}
	return Int(int64(v))
}

func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether the value is an Integer or a Float
func (v Value) IsNumeric() bool {
	return v.kind == KindInteger || v.kind == KindFloat
}

// IsNull reports whether the value is an Other holding nil
func (v Value) IsNull() bool {
	return v.kind == KindOther && v.other == nil
}

// Interface returns the native payload
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		if v.bits == 32 {
			return float32(v.f)
		}
		return v.f
	case KindText:
		return v.s
	case KindInstant:
		return v.t
	default:
		return v.other
	}
}

// String returns the display text used for rendering and as the sort fallback
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		bits := v.bits
		if bits == 0 {
			bits = 64
		}
		return strconv.FormatFloat(v.f, 'g', -1, bits)
	case KindText:
		return v.s
	case KindInstant:
		return v.t.Format(InstantLayout)
	default:
		if v.other == nil {
			return "NULL"
		}
		return fmt.Sprintf("%v", v.other)
	}
}
