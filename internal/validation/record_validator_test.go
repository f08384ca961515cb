package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcli/pkg/contracts/domain"
)

func validRecord() domain.Record {
	rec := domain.Record{
		Rank:  1,
		Bib:   101,
		Name:  "SMITH Jane",
		NOC:   "USA",
		Total: domain.Number(55.432),
	}
	for i := range rec.Apparatus {
		rec.Apparatus[i] = domain.ApparatusScore{
			Score: domain.Number(13.5),
			D:     domain.Number(5.4),
			E:     domain.Number(8.1),
			Pen:   domain.Unknown(),
			Rk:    domain.Unknown(),
		}
	}
	return rec
}

func TestRecordValidator_ValidateRecord(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.Record)
		wantErr       bool
		errorContains string
	}{
		{
			name:    "valid record",
			mutate:  func(*domain.Record) {},
			wantErr: false,
		},
		{
			name:          "lowercase noc",
			mutate:        func(r *domain.Record) { r.NOC = "usa" },
			wantErr:       true,
			errorContains: "three letter country code",
		},
		{
			name:          "noc too long",
			mutate:        func(r *domain.Record) { r.NOC = "USAA" },
			wantErr:       true,
			errorContains: "three letter country code",
		},
		{
			name:          "empty name",
			mutate:        func(r *domain.Record) { r.Name = "" },
			wantErr:       true,
			errorContains: "Name",
		},
		{
			name:          "numeric noise name",
			mutate:        func(r *domain.Record) { r.Name = "13.233 (4)" },
			wantErr:       true,
			errorContains: "plausible athlete name",
		},
		{
			name:          "zero bib",
			mutate:        func(r *domain.Record) { r.Bib = 0 },
			wantErr:       true,
			errorContains: "Bib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rv := NewRecordValidator(nil)
			rec := validRecord()
			tt.mutate(&rec)

			err := rv.ValidateRecord(rec)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordValidator_FilterValid(t *testing.T) {
	rv := NewRecordValidator(nil)

	good := validRecord()
	bad := validRecord()
	bad.NOC = "??"

	kept := rv.FilterValid([]domain.Record{good, bad, good})
	require.Len(t, kept, 2)
	for _, rec := range kept {
		assert.Equal(t, "USA", rec.NOC)
	}

	assert.Empty(t, rv.FilterValid(nil))
}
