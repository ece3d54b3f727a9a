package grid

import (
	"math"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestOf(t *testing.T) {
	when := time.Date(2013, time.March, 5, 14, 3, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    interface{}
		kind     Kind
		expected string
	}{
		{"int", 42, KindInteger, "42"},
		{"int8", int8(-8), KindInteger, "-8"},
		{"uint16", uint16(65535), KindInteger, "65535"},
		{"uint64 overflow", uint64(math.MaxUint64), KindFloat, "1.8446744073709552e+19"},
		{"float32", float32(0.1), KindFloat, "0.1"},
		{"float64", 2.5, KindFloat, "2.5"},
		{"string", "hello", KindText, "hello"},
		{"time", when, KindInstant, "Tue Mar 05 14:03:00 UTC 2013"},
		{"time pointer", &when, KindInstant, "Tue Mar 05 14:03:00 UTC 2013"},
		{"nil time pointer", (*time.Time)(nil), KindOther, "NULL"},
		{"bool", true, KindOther, "true"},
		{"nil", nil, KindOther, "NULL"},
		{"value", Text("x"), KindText, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(tt.input)
			assert.Equal(t, v.Kind(), tt.kind)
			assert.Equal(t, v.String(), tt.expected)
		})
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Assert(t, v.IsNull())
	assert.Equal(t, v.Kind(), KindOther)
	assert.Equal(t, v.String(), "NULL")
}

func TestIsNumeric(t *testing.T) {
	assert.Assert(t, Int(1).IsNumeric())
	assert.Assert(t, Float(1).IsNumeric())
	assert.Assert(t, !Text("1").IsNumeric())
	assert.Assert(t, !Instant(time.Now()).IsNumeric())
	assert.Assert(t, !Other(1).IsNumeric())
}

func TestInterface(t *testing.T) {
	assert.Equal(t, Int(3).Interface(), int64(3))
	assert.Equal(t, Float32(1.5).Interface(), float32(1.5))
	assert.Equal(t, Text("a").Interface(), "a")
	assert.Equal(t, Other(nil).Interface(), nil)
}

func TestCompare(t *testing.T) {
	early := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name     string
		a, b     Value
		expected int
	}{
		{"ints", Int(4), Int(10), -1},
		{"equal ints", Int(4), Int(4), 0},
		{"floats", Float(2.5), Float(1.5), 1},
		{"int vs float", Int(3), Float(2.5), 1},
		{"float32 vs int", Float32(0.5), Int(1), -1},
		{"large ints keep precision", Int(math.MaxInt64), Int(math.MaxInt64 - 1), 1},
		{"int above float precision", Int(1<<53 + 1), Float(1 << 53), 1},
		{"max int below 2^63 float", Int(math.MaxInt64), Float(float64(math.MaxInt64)), -1},
		{"min int equals -2^63 float", Int(math.MinInt64), Float(-0x1p63), 0},
		{"int vs fraction", Int(-3), Float(-2.5), -1},
		{"negative fraction below int", Int(-2), Float(-2.5), 1},
		{"int vs infinity", Int(math.MaxInt64), Float(math.Inf(1)), -1},
		{"int vs NaN", Int(0), Float(math.NaN()), 1},
		{"instants", Instant(early), Instant(late), -1},
		{"text", Text("apple"), Text("banana"), -1},
		{"text is byte ordered", Text("Zebra"), Text("apple"), -1},
		{"number vs text uses display", Int(10), Text("9"), -1},
		{"instant vs text uses display", Instant(early), Text("A"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Compare(tt.a, tt.b), tt.expected)
			assert.Equal(t, Compare(tt.b, tt.a), -tt.expected)
			assert.Equal(t, Ascending.Compare(tt.a, tt.b), tt.expected)
			assert.Equal(t, Descending.Compare(tt.a, tt.b), -tt.expected)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, KindInteger.String(), "Integer")
	assert.Equal(t, KindInstant.String(), "Instant")
	assert.Equal(t, Kind(99).String(), "Unknown(99)")
}
