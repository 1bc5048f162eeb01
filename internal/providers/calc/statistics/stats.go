// Package statistics implements aggregate operations over sequences.
package statistics

import (
	"context"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/calcware/numerics/internal/providers/calc/common"
	"github.com/calcware/numerics/internal/types"
)

// StatsOps handles statistical operations using gonum
type StatsOps struct {
	*common.CalcOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.mean",
			Name:        "Mean",
			Description: "Calculate arithmetic mean",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.median",
			Name:        "Median",
			Description: "Calculate median value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.min",
			Name:        "Minimum",
			Description: "Find minimum value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.max",
			Name:        "Maximum",
			Description: "Find maximum value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.sum",
			Name:        "Sum",
			Description: "Calculate sum of all numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.stdev",
			Name:        "Standard Deviation",
			Description: "Calculate sample standard deviation",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
	}
}

// Mean calculates arithmetic mean using gonum
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, errResult := s.sample(params, 1)
	if errResult != nil {
		return errResult, nil
	}

	return common.Success(map[string]interface{}{"result": stat.Mean(numbers, nil)})
}

// Median calculates median using gonum quantile
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, errResult := s.sample(params, 1)
	if errResult != nil {
		return errResult, nil
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	return common.Success(map[string]interface{}{"result": stat.Quantile(0.5, stat.Empirical, sorted, nil)})
}

// Min finds minimum value
func (s *StatsOps) Min(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, errResult := s.sample(params, 1)
	if errResult != nil {
		return errResult, nil
	}

	min := numbers[0]
	for _, n := range numbers[1:] {
		min = gomath.Min(min, n)
	}

	return common.Success(map[string]interface{}{"result": min})
}

// Max finds maximum value
func (s *StatsOps) Max(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, errResult := s.sample(params, 1)
	if errResult != nil {
		return errResult, nil
	}

	max := numbers[0]
	for _, n := range numbers[1:] {
		max = gomath.Max(max, n)
	}

	return common.Success(map[string]interface{}{"result": max})
}

// Sum calculates sum
func (s *StatsOps) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, errResult := s.sample(params, 1)
	if errResult != nil {
		return errResult, nil
	}

	sum := 0.0
	for _, n := range numbers {
		sum += n
	}

	return common.Success(map[string]interface{}{"result": sum})
}

// Stdev calculates sample standard deviation using gonum
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, errResult := s.sample(params, 2)
	if errResult != nil {
		return errResult, nil
	}

	return common.Success(map[string]interface{}{"result": stat.StdDev(numbers, nil)})
}

// sample extracts and validates the numbers parameter. The returned
// result is non-nil when the sample is missing, too small, or non-finite.
func (s *StatsOps) sample(params map[string]interface{}, minLen int) ([]float64, *types.Result) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) < minLen {
		var result *types.Result
		if minLen > 1 {
			result, _ = common.Failure("numbers array with at least 2 elements required")
		} else {
			result, _ = common.Failure("numbers array required")
		}
		return nil, result
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		result, _ := common.Failure(err.Error())
		return nil, result
	}

	return numbers, nil
}
