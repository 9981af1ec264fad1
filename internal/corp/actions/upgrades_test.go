package actions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/testutil"
)

func TestUnlockUpgrade(t *testing.T) {
	e := testutil.NewTestEngine()
	corp := testutil.NewTestCorporation(500)

	// Export costs 200 in the test tables
	ok, err := e.UnlockUpgrade(corp, "Export")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 300.0, corp.Funds)
	assert.True(t, corp.HasUnlocked("Export"))

	t.Run("re-buying is free and succeeds", func(t *testing.T) {
		ok, err := e.UnlockUpgrade(corp, "Export")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 300.0, corp.Funds)
	})

	t.Run("unknown upgrade", func(t *testing.T) {
		ok, err := e.UnlockUpgrade(corp, "Teleportation")
		assert.ErrorIs(t, err, core.ErrUnknownUpgrade)
		assert.False(t, ok)
	})

	t.Run("insufficient funds reports false without error", func(t *testing.T) {
		poor := testutil.NewTestCorporation(100)
		ok, err := e.UnlockUpgrade(poor, "Export")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 100.0, poor.Funds)
		assert.False(t, poor.HasUnlocked("Export"))
	})
}

func TestLevelUpgrade(t *testing.T) {
	e := testutil.NewTestEngine()
	corp := testutil.NewTestCorporation(350)

	// Smart Factories: base 100, price mult 2
	ok, err := e.LevelUpgrade(corp, "Smart Factories")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, corp.UpgradeLevel("Smart Factories"))
	assert.Equal(t, 250.0, corp.Funds)

	t.Run("next level doubles the cost", func(t *testing.T) {
		ok, err := e.LevelUpgrade(corp, "Smart Factories")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, corp.UpgradeLevel("Smart Factories"))
		assert.Equal(t, 50.0, corp.Funds)
	})

	t.Run("unaffordable level leaves state untouched", func(t *testing.T) {
		ok, err := e.LevelUpgrade(corp, "Smart Factories")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 2, corp.UpgradeLevel("Smart Factories"))
		assert.Equal(t, 50.0, corp.Funds)
	})

	t.Run("unknown upgrade", func(t *testing.T) {
		ok, err := e.LevelUpgrade(corp, "Teleportation")
		assert.ErrorIs(t, err, core.ErrUnknownUpgrade)
		assert.False(t, ok)
	})
}

func TestIssueDividends(t *testing.T) {
	e := testutil.NewTestEngine()

	t.Run("valid percents stored at x100 scale", func(t *testing.T) {
		corp := testutil.NewTestCorporation(0)
		require.NoError(t, e.IssueDividends(corp, 5))
		assert.Equal(t, 500.0, corp.DividendPercent)
		require.NoError(t, e.IssueDividends(corp, 0))
		assert.Equal(t, 0.0, corp.DividendPercent)
		require.NoError(t, e.IssueDividends(corp, 50))
		assert.Equal(t, 5000.0, corp.DividendPercent)
	})

	t.Run("out-of-range and NaN rejected, state unchanged", func(t *testing.T) {
		corp := testutil.NewTestCorporation(0)
		require.NoError(t, e.IssueDividends(corp, 10))
		for _, pct := range []float64{-1, 50.1, math.NaN()} {
			err := e.IssueDividends(corp, pct)
			assert.ErrorIs(t, err, core.ErrInvalidPercent)
			assert.Equal(t, 1000.0, corp.DividendPercent)
		}
	})
}

func TestBuyCoffee(t *testing.T) {
	e := testutil.NewTestEngine()
	div := core.NewDivision("Farms", "Agriculture", nil)
	office := core.NewOffice("Aevum", 3)
	testutil.Staff(office, 2)

	// Coffee costs 10 per employee in the test tables
	t.Run("refreshes employees and counts a round", func(t *testing.T) {
		corp := testutil.NewTestCorporation(100)
		e.BuyCoffee(corp, div, office)
		assert.Equal(t, 80.0, corp.Funds)
		assert.Equal(t, 1, div.UpgradeLevels["Coffee"])
		for _, emp := range office.Employees {
			assert.InDelta(t, 75*1.05, emp.Energy, 1e-9)
		}
	})

	t.Run("unaffordable round is a silent no-op", func(t *testing.T) {
		corp := testutil.NewTestCorporation(15)
		before := office.Employees[0].Energy
		e.BuyCoffee(corp, div, office)
		assert.Equal(t, 15.0, corp.Funds)
		assert.Equal(t, 1, div.UpgradeLevels["Coffee"])
		assert.Equal(t, before, office.Employees[0].Energy)
	})
}

func TestHireAdVert(t *testing.T) {
	e := testutil.NewTestEngine()
	corp := testutil.NewTestCorporation(350)
	div := core.NewDivision("Farms", "Agriculture", nil)

	// AdVert: base 100, price mult 2
	assert.True(t, e.HireAdVert(corp, div))
	assert.Equal(t, 1, div.UpgradeLevels["AdVert"])
	assert.Equal(t, 250.0, corp.Funds)

	assert.True(t, e.HireAdVert(corp, div))
	assert.Equal(t, 2, div.UpgradeLevels["AdVert"])
	assert.Equal(t, 50.0, corp.Funds)

	t.Run("unaffordable campaign changes nothing", func(t *testing.T) {
		assert.False(t, e.HireAdVert(corp, div))
		assert.Equal(t, 2, div.UpgradeLevels["AdVert"])
		assert.Equal(t, 50.0, corp.Funds)
	})
}
