package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tripwhizz/expenses/internal/money"
)

func bp(percent string) *int64 {
	v, err := ParseBasisPoints(percent)
	if err != nil {
		panic(err)
	}
	return &v
}

func exact(s string) *money.Amount {
	v, err := money.ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return &v
}

func count(n int64) *int64 {
	return &n
}

func sumOwed(allocations []Allocation) money.Amount {
	var sum money.Amount
	for _, a := range allocations {
		sum = sum.Add(a.Owed)
	}
	return sum
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	for _, method := range []Method{MethodEqual, MethodPercentage, MethodExact, MethodShares} {
		s, err := f.Create(method)
		require.NoError(t, err)
		assert.Equal(t, method, s.Method())
	}

	_, err := f.CreateFromString("by_vibes")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestEqualAllocate(t *testing.T) {
	s := &EqualStrategy{}

	t.Run("100.00 among three", func(t *testing.T) {
		allocations, err := s.Allocate(10000, []Input{
			{ParticipantID: 1}, {ParticipantID: 2}, {ParticipantID: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, []Allocation{
			{ParticipantID: 1, Owed: 3334},
			{ParticipantID: 2, Owed: 3333},
			{ParticipantID: 3, Owed: 3333},
		}, allocations)
	})

	t.Run("no participants", func(t *testing.T) {
		_, err := s.Allocate(10000, nil)
		assert.ErrorIs(t, err, ErrNoParticipants)
	})
}

func TestPercentageAllocate(t *testing.T) {
	s := &PercentageStrategy{}

	t.Run("50/30/20", func(t *testing.T) {
		allocations, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, BasisPoints: bp("50")},
			{ParticipantID: 2, BasisPoints: bp("30")},
			{ParticipantID: 3, BasisPoints: bp("20")},
		})
		require.NoError(t, err)
		assert.Equal(t, []Allocation{
			{ParticipantID: 1, Owed: 5000},
			{ParticipantID: 2, Owed: 3000},
			{ParticipantID: 3, Owed: 2000},
		}, allocations)
	})

	t.Run("33/33/34 sums exactly", func(t *testing.T) {
		allocations, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, BasisPoints: bp("33")},
			{ParticipantID: 2, BasisPoints: bp("33")},
			{ParticipantID: 3, BasisPoints: bp("34")},
		})
		require.NoError(t, err)
		assert.Equal(t, money.Amount(10000), sumOwed(allocations))
	})

	t.Run("quarter-percent inputs accepted when exact", func(t *testing.T) {
		allocations, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, BasisPoints: bp("33.33")},
			{ParticipantID: 2, BasisPoints: bp("33.33")},
			{ParticipantID: 3, BasisPoints: bp("33.34")},
		})
		require.NoError(t, err)
		assert.Equal(t, money.Amount(10000), sumOwed(allocations))
	})

	t.Run("99.99 rejected", func(t *testing.T) {
		_, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, BasisPoints: bp("33.33")},
			{ParticipantID: 2, BasisPoints: bp("33.33")},
			{ParticipantID: 3, BasisPoints: bp("33.33")},
		})
		assert.ErrorIs(t, err, ErrPercentageSum)
	})

	t.Run("negative percentage rejected", func(t *testing.T) {
		_, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, BasisPoints: bp("-10")},
			{ParticipantID: 2, BasisPoints: bp("110")},
		})
		assert.ErrorIs(t, err, ErrPercentageOutOfRange)
	})

	t.Run("missing percentage rejected", func(t *testing.T) {
		_, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, BasisPoints: bp("100")},
			{ParticipantID: 2},
		})
		assert.ErrorIs(t, err, ErrMissingPercentage)
	})
}

func TestExactAllocate(t *testing.T) {
	s := &ExactStrategy{}

	t.Run("passes amounts through", func(t *testing.T) {
		allocations, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, Exact: exact("70.00")},
			{ParticipantID: 2, Exact: exact("30.00")},
		})
		require.NoError(t, err)
		assert.Equal(t, money.Amount(7000), allocations[0].Owed)
		assert.Equal(t, money.Amount(3000), allocations[1].Owed)
	})

	t.Run("does not rebalance a mismatch", func(t *testing.T) {
		// 99.99 against a 100.00 total: the allocator's contract is
		// pass-through; the expense validator owns the sum check.
		allocations, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, Exact: exact("49.99")},
			{ParticipantID: 2, Exact: exact("50.00")},
		})
		require.NoError(t, err)
		assert.Equal(t, money.Amount(9999), sumOwed(allocations))
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := s.Allocate(10000, []Input{
			{ParticipantID: 1, Exact: exact("-5.00")},
		})
		assert.ErrorIs(t, err, ErrNegativeExactAmount)
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		_, err := s.Allocate(10000, []Input{{ParticipantID: 1}})
		assert.ErrorIs(t, err, ErrMissingExactAmount)
	})
}

func TestSharesAllocate(t *testing.T) {
	s := &SharesStrategy{}

	t.Run("proportional to counts", func(t *testing.T) {
		allocations, err := s.Allocate(9000, []Input{
			{ParticipantID: 1, Shares: count(2)},
			{ParticipantID: 2, Shares: count(1)},
		})
		require.NoError(t, err)
		assert.Equal(t, money.Amount(6000), allocations[0].Owed)
		assert.Equal(t, money.Amount(3000), allocations[1].Owed)
	})

	t.Run("zero count rejected", func(t *testing.T) {
		_, err := s.Allocate(9000, []Input{
			{ParticipantID: 1, Shares: count(0)},
		})
		assert.ErrorIs(t, err, ErrNonPositiveShares)
	})

	t.Run("missing count rejected", func(t *testing.T) {
		_, err := s.Allocate(9000, []Input{{ParticipantID: 1}})
		assert.ErrorIs(t, err, ErrMissingShareCount)
	})
}

// Exact-sum property across the self-balancing methods: for any valid
// input, the allocations sum to the total with integer equality.
func TestAllocateExactSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := money.Amount(rapid.Int64Range(1, 10_000_000).Draw(t, "total"))
		n := rapid.IntRange(1, 12).Draw(t, "n")

		inputs := make([]Input, n)
		for i := range inputs {
			inputs[i].ParticipantID = int64(i + 1)
		}

		method := rapid.SampledFrom([]Method{MethodEqual, MethodPercentage, MethodShares}).Draw(t, "method")
		switch method {
		case MethodPercentage:
			// Random basis points that sum to exactly 100.00.
			remaining := BasisPointsTotal
			for i := range inputs {
				var v int64
				if i == len(inputs)-1 {
					v = remaining
				} else {
					v = rapid.Int64Range(0, remaining).Draw(t, "bp")
				}
				remaining -= v
				inputs[i].BasisPoints = &v
			}
		case MethodShares:
			for i := range inputs {
				v := rapid.Int64Range(1, 100).Draw(t, "shares")
				inputs[i].Shares = &v
			}
		}

		strategy, err := NewFactory().Create(method)
		if err != nil {
			t.Fatalf("create %s: %v", method, err)
		}
		allocations, err := strategy.Allocate(total, inputs)
		if err != nil {
			t.Fatalf("allocate %s: %v", method, err)
		}
		if got := sumOwed(allocations); got != total {
			t.Fatalf("%s allocations sum to %d, want %d", method, got, total)
		}
	})
}
