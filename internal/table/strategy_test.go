package table_test

import (
	"testing"

	"github.com/MikhailWahib/probetable/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want table.Strategy
	}{
		{"linear", table.LinearProbe},
		{"1", table.LinearProbe},
		{" Quadratic ", table.QuadraticProbe},
		{"2", table.QuadraticProbe},
		{"CHAINING", table.Chaining},
		{"3", table.Chaining},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := table.ParseStrategy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := table.ParseStrategy("cuckoo")
	assert.ErrorIs(t, err, table.ErrUnknownStrategy)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "linear", table.LinearProbe.String())
	assert.Equal(t, "quadratic", table.QuadraticProbe.String())
	assert.Equal(t, "chaining", table.Chaining.String())
	assert.Equal(t, "Strategy(9)", table.Strategy(9).String())

	assert.True(t, table.LinearProbe.OpenAddressing())
	assert.True(t, table.QuadraticProbe.OpenAddressing())
	assert.False(t, table.Chaining.OpenAddressing())
}
