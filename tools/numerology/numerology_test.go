package numerology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
)

func TestReduceTerminates(t *testing.T) {
	for n := 0; n < 10000; n++ {
		got := Reduce(n)
		assert.True(t, got <= 9 || IsMaster(got), "reduce(%d) = %d", n, got)
	}
}

func TestLifeNumber(t *testing.T) {
	tests := []struct {
		date   string
		expect int
	}{
		// 2+2+0+8+1+9+9+0 = 31 -> 4
		{"22.08.1990", 4},
		// 0+1+0+1+1+9+8+0 = 20 -> 2
		{"1.1.1980", 2},
		// 2+9+0+2+2+0+0+0 = 15 -> 6
		{"29.2.2000", 6},
		// 2+9+0+9+1+9+7+5 = 42 -> 6
		{"29.09.1975", 6},
		// 1+9+0+9+1+9+9+1 = 39 -> 12 -> 3
		{"19.09.1991", 3},
		// 0+2+1+1+1+9+9+9 = 32 -> 5
		{"2.11.1999", 5},
		// 0+9+1+1+1+9+9+1 = 31 -> 4
		{"9.11.1991", 4},
		// 2+9+1+1+1+9+9+1 = 33, master
		{"29.11.1991", 33},
		// 0+0+0+0+0+0+0+0
		{"00.00.0000", 0},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := LifeNumber(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestLifeNumberInvalid(t *testing.T) {
	for _, date := range []string{"a.b.c", "12.05.19x0", "-1.2.2000"} {
		_, err := LifeNumber(date)
		assert.Error(t, err, date)
	}
}

func TestToolRun(t *testing.T) {
	tool := New()
	tests := []struct {
		date   string
		expect string
	}{
		{"22.08.1990", "Životní číslo: 4 - Stavitel - praktický, organizovaný, spolehlivý"},
		{"29.11.1991", "Životní číslo: 33 - Mistr Učitel - soucitný, moudrý, duchovní průvodce"},
		{"00.00.0000", "Životní číslo: 0 - Neznámý význam"},
		{"dnes", birthdate.InvalidFormatMessage},
	}
	for _, tt := range tests {
		var out schema.String
		require.NoError(t, tool.Run(context.Background(), NewInput(tt.date), &out))
		assert.Equal(t, tt.expect, out.String())
	}
}
