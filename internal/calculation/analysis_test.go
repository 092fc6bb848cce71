package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsim/wealth-simulator/internal/domain"
)

func TestPercentileBandsByYear(t *testing.T) {
	t.Run("empty grid", func(t *testing.T) {
		assert.Nil(t, PercentileBandsByYear(nil))
	})

	t.Run("known distribution", func(t *testing.T) {
		grid := make([][]decimal.Decimal, 100)
		for i := range grid {
			grid[i] = []decimal.Decimal{decimal.NewFromInt(int64(i))}
		}
		bands := PercentileBandsByYear(grid)
		require.Len(t, bands, 1)
		assert.True(t, bands[0].P10.Equal(decimal.NewFromInt(10)))
		assert.True(t, bands[0].P50.Equal(decimal.NewFromInt(50)))
		assert.True(t, bands[0].P90.Equal(decimal.NewFromInt(90)))
	})

	t.Run("does not reorder the input grid", func(t *testing.T) {
		grid := [][]decimal.Decimal{
			{decimal.NewFromInt(3)},
			{decimal.NewFromInt(1)},
			{decimal.NewFromInt(2)},
		}
		PercentileBandsByYear(grid)
		assert.True(t, grid[0][0].Equal(decimal.NewFromInt(3)))
		assert.True(t, grid[1][0].Equal(decimal.NewFromInt(1)))
	})

	t.Run("bands are ordered on simulated output", func(t *testing.T) {
		result, err := NewEngine().RunSimulation(context.Background(), simConfig())
		require.NoError(t, err)

		bands := PercentileBandsByYear(result.NetWorth)
		require.Len(t, bands, simConfig().Years+1)
		for _, band := range bands {
			assert.True(t, band.P10.LessThanOrEqual(band.P25))
			assert.True(t, band.P25.LessThanOrEqual(band.P50))
			assert.True(t, band.P50.LessThanOrEqual(band.P75))
			assert.True(t, band.P75.LessThanOrEqual(band.P90))
		}
	})
}

func TestGrowthProbabilities(t *testing.T) {
	result := domain.NewSimulationResult(4, 1)
	initial := decimal.NewFromInt(100)
	finals := []int64{50, 150, 250, 300}
	for path, final := range finals {
		result.NetWorth[path][0] = initial
		result.NetWorth[path][1] = decimal.NewFromInt(final)
	}

	growth := ComputeGrowthProbabilities(result)
	assert.True(t, growth.AboveInitial.Equal(decimal.NewFromFloat(0.75)), "got %s", growth.AboveInitial)
	assert.True(t, growth.DoubledInitial.Equal(decimal.NewFromFloat(0.5)), "got %s", growth.DoubledInitial)

	assert.Equal(t, GrowthProbabilities{}, ComputeGrowthProbabilities(&domain.SimulationResult{}))
}

func TestTerminalPercentile(t *testing.T) {
	result := domain.NewSimulationResult(10, 1)
	for path := 0; path < 10; path++ {
		result.NetWorth[path][1] = decimal.NewFromInt(int64(path * 10))
	}
	assert.True(t, MedianFinal(result).Equal(decimal.NewFromInt(50)))
	assert.True(t, TerminalPercentile(result, 90).Equal(decimal.NewFromInt(90)))
	assert.True(t, TerminalPercentile(result, 10).Equal(decimal.NewFromInt(10)))
}
