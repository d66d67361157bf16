package astar

import (
	"fmt"
	"math"
)

const (
	// DefaultBaseCost is the cost of one orthogonal step.
	DefaultBaseCost = 10
	// DefaultDiagonalBonus scales the base cost for a diagonal step.
	DefaultDiagonalBonus = 1.4
)

// CostModel prices moves under octile geometry.
type CostModel struct {
	base     int
	bonus    float64
	diagonal int
}

// DefaultCostModel returns the model with base 10 and diagonal step 14.
func DefaultCostModel() CostModel {
	m, _ := NewCostModel(DefaultBaseCost, DefaultDiagonalBonus)
	return m
}

// NewCostModel builds a model for the given orthogonal step cost and
// diagonal multiplier. The diagonal unit is truncated once, here.
func NewCostModel(base int, diagonalBonus float64) (CostModel, error) {
	if base <= 0 {
		return CostModel{}, fmt.Errorf("base cost must be positive, got %d", base)
	}
	if math.IsNaN(diagonalBonus) || diagonalBonus < 1 {
		return CostModel{}, fmt.Errorf("diagonal bonus must be >= 1, got %v", diagonalBonus)
	}
	return CostModel{
		base:     base,
		bonus:    diagonalBonus,
		diagonal: int(math.Floor(float64(base)*diagonalBonus + 1e-9)),
	}, nil
}

// Base returns the orthogonal step cost.
func (m CostModel) Base() int { return m.base }

// DiagonalBonus returns the configured multiplier.
func (m CostModel) DiagonalBonus() float64 { return m.bonus }

// DiagonalUnit returns the integer cost of one diagonal step.
func (m CostModel) DiagonalUnit() int { return m.diagonal }

// Cost returns the octile distance between a and b.
func (m CostModel) Cost(a, b Node) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	diagonalSteps := min(dx, dy)
	straightSteps := dx + dy - 2*diagonalSteps
	return diagonalSteps*m.diagonal + straightSteps*m.base
}

// Heuristic estimates the remaining cost from n to end.
func (m CostModel) Heuristic(n, end Node) int {
	return m.Cost(n, end)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
