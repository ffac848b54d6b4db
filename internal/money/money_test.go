package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "two decimals", input: "100.00", want: 10000},
		{name: "one decimal", input: "0.5", want: 50},
		{name: "integer", input: "42", want: 4200},
		{name: "negative", input: "-19.99", want: -1999},
		{name: "three decimals rejected", input: "1.005", wantErr: true},
		{name: "garbage rejected", input: "abc", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "100.00", Amount(10000).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "-20.50", Amount(-2050).String())
}

func TestSplit(t *testing.T) {
	t.Run("100.00 among 3", func(t *testing.T) {
		parts, err := Amount(10000).Split(3)
		require.NoError(t, err)
		assert.Equal(t, []Amount{3334, 3333, 3333}, parts)
	})

	t.Run("divides evenly", func(t *testing.T) {
		parts, err := Amount(6000).Split(3)
		require.NoError(t, err)
		assert.Equal(t, []Amount{2000, 2000, 2000}, parts)
	})

	t.Run("single recipient", func(t *testing.T) {
		parts, err := Amount(1).Split(1)
		require.NoError(t, err)
		assert.Equal(t, []Amount{1}, parts)
	})

	t.Run("zero recipients rejected", func(t *testing.T) {
		_, err := Amount(100).Split(0)
		assert.ErrorIs(t, err, ErrNoRecipients)
	})
}

func TestSplitFairness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := Amount(rapid.Int64Range(0, 1_000_000_00).Draw(t, "total"))
		n := rapid.IntRange(1, 50).Draw(t, "n")

		parts, err := total.Split(n)
		if err != nil {
			t.Fatalf("Split(%d, %d): %v", total, n, err)
		}

		var sum Amount
		extras := 0
		base := int64(total) / int64(n)
		for _, p := range parts {
			sum += p
			switch int64(p) {
			case base:
			case base + 1:
				extras++
			default:
				t.Fatalf("part %d is neither floor nor floor+1 of %d/%d", p, total, n)
			}
		}
		if sum != total {
			t.Fatalf("parts sum to %d, want %d", sum, total)
		}
		if int64(extras) != int64(total)%int64(n) {
			t.Fatalf("%d parts got the extra unit, want %d", extras, int64(total)%int64(n))
		}
	})
}

func TestDistribute(t *testing.T) {
	t.Run("proportional", func(t *testing.T) {
		parts, err := Amount(10000).Distribute([]int64{1, 2, 1})
		require.NoError(t, err)
		assert.Equal(t, []Amount{2500, 5000, 2500}, parts)
	})

	t.Run("indivisible remainder goes first", func(t *testing.T) {
		parts, err := Amount(100).Distribute([]int64{1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, []Amount{34, 33, 33}, parts)
	})

	t.Run("zero weight rejected", func(t *testing.T) {
		_, err := Amount(100).Distribute([]int64{1, 0})
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("no weights rejected", func(t *testing.T) {
		_, err := Amount(100).Distribute(nil)
		assert.ErrorIs(t, err, ErrNoRecipients)
	})
}

func TestDistributeExactSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := Amount(rapid.Int64Range(0, 1_000_000_00).Draw(t, "total"))
		weights := rapid.SliceOfN(rapid.Int64Range(1, 1000), 1, 20).Draw(t, "weights")

		parts, err := total.Distribute(weights)
		if err != nil {
			t.Fatalf("Distribute(%d, %v): %v", total, weights, err)
		}
		var sum Amount
		for _, p := range parts {
			sum += p
		}
		if sum != total {
			t.Fatalf("parts sum to %d, want %d", sum, total)
		}
	})
}
