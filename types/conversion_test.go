package types_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/typedmath/types"
)

func identity(v any) (any, error) { return v, nil }

// TestConversionTable_AddValidation rejects nonsensical and duplicate edges.
func TestConversionTable_AddValidation(t *testing.T) {
	tbl := types.NewConversionTable()
	assert.ErrorIs(t, tbl.Add(types.Number, types.Number, 1, identity), types.ErrBadConversion)
	assert.ErrorIs(t, tbl.Add(types.Unknown, types.Number, 1, identity), types.ErrBadConversion)
	assert.ErrorIs(t, tbl.Add(types.Boolean, types.Number, 0, identity), types.ErrBadConversion)
	assert.ErrorIs(t, tbl.Add(types.Boolean, types.Number, 1, nil), types.ErrBadConversion)

	require.NoError(t, tbl.Add(types.Boolean, types.Number, 1, identity))
	assert.ErrorIs(t, tbl.Add(types.Boolean, types.Number, 2, identity), types.ErrDuplicateConversion)

	// The first Path call freezes the table.
	_, ok := tbl.Path(types.Boolean, types.Number)
	assert.True(t, ok)
	assert.ErrorIs(t, tbl.Add(types.Number, types.Complex, 1, identity), types.ErrTableFrozen)
}

// TestConversionTable_ZeroValue shows the zero table is usable.
func TestConversionTable_ZeroValue(t *testing.T) {
	var tbl types.ConversionTable
	require.NoError(t, tbl.Add(types.Boolean, types.Number, 1, identity))
	assert.True(t, tbl.CanConvert(types.Boolean, types.Number))
	assert.False(t, tbl.CanConvert(types.Number, types.Boolean))
}

// TestDefaultConversions_Routes checks multi-hop costs and the absence of
// narrowing edges.
func TestDefaultConversions_Routes(t *testing.T) {
	tbl := types.DefaultConversions()

	r, ok := tbl.Path(types.Boolean, types.Complex)
	require.True(t, ok)
	assert.Equal(t, int64(4), r.Cost)
	require.Len(t, r.Steps, 2)
	assert.Equal(t, types.Number, r.Steps[0].To)

	r, ok = tbl.Path(types.Boolean, types.BigNumber)
	require.True(t, ok)
	assert.Equal(t, int64(2), r.Cost)

	same, ok := tbl.Path(types.Fraction, types.Fraction)
	require.True(t, ok)
	assert.Zero(t, same.Cost)
	assert.Empty(t, same.Steps)

	for _, pair := range [][2]types.Tag{
		{types.Complex, types.Number},
		{types.BigNumber, types.Number},
		{types.Fraction, types.BigNumber},
		{types.BigNumber, types.Fraction},
		{types.Fraction, types.Complex},
		{types.BigNumber, types.Complex},
		{types.Unit, types.Number},
		{types.Number, types.Matrix},
	} {
		assert.False(t, tbl.CanConvert(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}

// TestRoute_Apply exercises each default converter, including rejections.
func TestRoute_Apply(t *testing.T) {
	tbl := types.DefaultConversions()

	r, _ := tbl.Path(types.Boolean, types.BigNumber)
	got, err := r.Apply(true)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(got.(decimal.Decimal)))

	r, _ = tbl.Path(types.Number, types.Fraction)
	got, err = r.Apply(0.5)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(1, 2).Cmp(got.(*big.Rat)))

	r, _ = tbl.Path(types.Boolean, types.Complex)
	got, err = r.Apply(false)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), got)

	r, _ = tbl.Path(types.Number, types.BigNumber)
	_, err = r.Apply(math.Inf(1))
	assert.ErrorIs(t, err, types.ErrConversionFailed)

	r, _ = tbl.Path(types.Number, types.Fraction)
	_, err = r.Apply(math.NaN())
	assert.ErrorIs(t, err, types.ErrConversionFailed)
}

// TestConversionTable_TieBreak verifies equal-cost routes resolve the same
// way on every run; with equal-depth chains the first-declared edge wins.
func TestConversionTable_TieBreak(t *testing.T) {
	for run := 0; run < 20; run++ {
		tbl := types.NewConversionTable().
			MustAdd(types.Boolean, types.Fraction, 1, identity).
			MustAdd(types.Boolean, types.BigNumber, 1, identity).
			MustAdd(types.Fraction, types.Complex, 1, identity).
			MustAdd(types.BigNumber, types.Complex, 1, identity)

		r, ok := tbl.Path(types.Boolean, types.Complex)
		require.True(t, ok)
		assert.Equal(t, int64(2), r.Cost)
		assert.Equal(t, types.Fraction, r.Steps[0].To)
	}
}

// TestConversionTable_TieBreakDirectEdge pins the equal-cost case where a
// direct edge declared last beats a two-step chain declared first.
func TestConversionTable_TieBreakDirectEdge(t *testing.T) {
	for run := 0; run < 20; run++ {
		tbl := types.NewConversionTable().
			MustAdd(types.Boolean, types.Number, 1, identity).
			MustAdd(types.Number, types.Complex, 1, identity).
			MustAdd(types.Boolean, types.Complex, 2, identity)

		r, ok := tbl.Path(types.Boolean, types.Complex)
		require.True(t, ok)
		assert.Equal(t, int64(2), r.Cost)
		require.Len(t, r.Steps, 1)
		assert.Equal(t, types.Boolean, r.Steps[0].From)
		assert.Equal(t, types.Complex, r.Steps[0].To)
	}
}

// TestDefaultConversions_NoLossyEdges checks the narrowing and
// precision-losing edges stay undeclared.
func TestDefaultConversions_NoLossyEdges(t *testing.T) {
	tbl := types.DefaultConversions()
	assert.False(t, tbl.CanConvert(types.BigNumber, types.Complex))
	assert.False(t, tbl.CanConvert(types.Fraction, types.Complex))
	assert.False(t, tbl.CanConvert(types.Fraction, types.BigNumber))
	assert.False(t, tbl.CanConvert(types.BigNumber, types.Fraction))
	assert.False(t, tbl.CanConvert(types.Complex, types.Number))
}
