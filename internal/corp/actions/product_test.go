package actions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/testutil"
)

func TestMakeProduct(t *testing.T) {
	e := testutil.NewTestEngine()

	t.Run("investment is sunk at creation", func(t *testing.T) {
		corp := testutil.NewTestCorporation(1500)
		div := core.NewDivision("Soft", "Software", nil)

		require.NoError(t, e.MakeProduct(corp, div, "Aevum", "Gadget", 400, 350))
		assert.Equal(t, 750.0, corp.Funds)

		prod, ok := div.Products["Gadget"]
		require.True(t, ok)
		assert.Equal(t, "Aevum", prod.CreationCity)
		assert.Equal(t, 400.0, prod.DesignCost)
		assert.Equal(t, 350.0, prod.AdvCost)
	})

	t.Run("negative investment clamps to zero", func(t *testing.T) {
		corp := testutil.NewTestCorporation(1000)
		div := core.NewDivision("Soft", "Software", nil)

		require.NoError(t, e.MakeProduct(corp, div, "Aevum", "Widget", -50, 300))
		assert.Equal(t, 700.0, corp.Funds)
		assert.Equal(t, 0.0, div.Products["Widget"].DesignCost)
	})

	t.Run("NaN investment rejected", func(t *testing.T) {
		corp := testutil.NewTestCorporation(1000)
		div := core.NewDivision("Soft", "Software", nil)

		err := e.MakeProduct(corp, div, "Aevum", "Widget", math.NaN(), 300)
		assert.ErrorIs(t, err, core.ErrInvalidAmount)
		assert.Contains(t, err.Error(), "design investment")

		err = e.MakeProduct(corp, div, "Aevum", "Widget", 300, math.NaN())
		assert.ErrorIs(t, err, core.ErrInvalidAmount)
		assert.Contains(t, err.Error(), "marketing investment")

		assert.Equal(t, 1000.0, corp.Funds)
		assert.Empty(t, div.Products)
	})

	t.Run("markup is stripped from the name", func(t *testing.T) {
		corp := testutil.NewTestCorporation(1000)
		div := core.NewDivision("Soft", "Software", nil)

		require.NoError(t, e.MakeProduct(corp, div, "Aevum", "<b>Gadget</b>", 100, 100))
		assert.Contains(t, div.Products, "bGadget/b")
		assert.NotContains(t, div.Products, "<b>Gadget</b>")
	})

	t.Run("name that sanitizes to empty rejected", func(t *testing.T) {
		corp := testutil.NewTestCorporation(1000)
		div := core.NewDivision("Soft", "Software", nil)

		err := e.MakeProduct(corp, div, "Aevum", "<>", 100, 100)
		assert.ErrorIs(t, err, core.ErrEmptyName)
		assert.Equal(t, 1000.0, corp.Funds)
	})

	t.Run("insufficient funds leaves funds untouched", func(t *testing.T) {
		corp := testutil.NewTestCorporation(500)
		div := core.NewDivision("Soft", "Software", nil)

		err := e.MakeProduct(corp, div, "Aevum", "Gadget", 400, 350)
		assert.ErrorIs(t, err, core.ErrInsufficientFunds)
		assert.Equal(t, 500.0, corp.Funds)
		assert.Empty(t, div.Products)
	})

	t.Run("duplicate name after sanitization", func(t *testing.T) {
		corp := testutil.NewTestCorporation(1000)
		div := core.NewDivision("Soft", "Software", nil)

		require.NoError(t, e.MakeProduct(corp, div, "Aevum", "Gadget", 100, 100))
		err := e.MakeProduct(corp, div, "Aevum", "<Gadget>", 100, 100)
		assert.ErrorIs(t, err, core.ErrDuplicateName)
		assert.Equal(t, 800.0, corp.Funds)
		assert.Len(t, div.Products, 1)
	})
}
