package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCoerce(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  Value
	}{
		{name: "numeric passes through", value: Number(15.766), want: Number(15.766)},
		{name: "unknown passes through", value: Unknown(), want: Unknown()},
		{name: "parseable text becomes number", value: Text("13.233"), want: Number(13.233)},
		{name: "negative text", value: Text("-0.1"), want: Number(-0.1)},
		{name: "thousands separator stripped", value: Text("1,234.5"), want: Number(1234.5)},
		{name: "empty text becomes unknown", value: Text("  "), want: Unknown()},
		{name: "unparseable text stays text", value: Text("DNS"), want: Text("DNS")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Coerce()
			assert.Equal(t, tt.want, got)
			// Coercion must be idempotent.
			assert.Equal(t, got, got.Coerce())
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "integer-valued", value: Number(14), want: "14"},
		{name: "three decimals", value: Number(15.766), want: "15.766"},
		{name: "negative", value: Number(-0.3), want: "-0.3"},
		{name: "text", value: Text("BILES Simone"), want: "BILES Simone"},
		{name: "unknown is empty", value: Unknown(), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueFloat64(t *testing.T) {
	f, ok := Number(8.5).Float64()
	assert.True(t, ok)
	assert.Equal(t, 8.5, f)

	_, ok = Text("8.5").Float64()
	assert.False(t, ok)

	_, ok = Unknown().Float64()
	assert.False(t, ok)
}
