package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymcli/pkg/contracts/domain"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		value domain.Value
		want  string
	}{
		{name: "integer-valued number", value: domain.Number(14), want: "14"},
		{name: "three decimals survive", value: domain.Number(15.766), want: "15.766"},
		{name: "negative penalty", value: domain.Number(-0.1), want: "-0.1"},
		{name: "text passes through", value: domain.Text("BILES Simone"), want: "BILES Simone"},
		{name: "unknown is empty field", value: domain.Unknown(), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.value))
		})
	}
}

func TestFormatRow(t *testing.T) {
	got := formatRow([]domain.Value{
		domain.Number(1), domain.Text("BILES Simone"), domain.Unknown(), domain.Number(-0.3),
	})

	assert.Equal(t, []string{"1", "BILES Simone", "", "-0.3"}, got)
}
