// Package operations implements the arithmetic and parity tools.
package operations

import (
	"context"
	"errors"

	"github.com/calcware/numerics/internal/calc"
	"github.com/calcware/numerics/internal/providers/calc/common"
	"github.com/calcware/numerics/internal/types"
)

// ArithmeticOps handles basic arithmetic operations
type ArithmeticOps struct {
	*common.CalcOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.add",
			Name:        "Add",
			Description: "Add two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.multiply",
			Name:        "Multiply",
			Description: "Multiply two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.divide",
			Name:        "Divide",
			Description: "Divide a by b",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Dividend", Required: true},
				{Name: "b", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
	}
}

// Add adds two numbers
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, valB, errResult := a.pair(params)
	if errResult != nil {
		return errResult, nil
	}

	return common.Success(map[string]interface{}{"result": calc.Add(valA, valB)})
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, valB, errResult := a.pair(params)
	if errResult != nil {
		return errResult, nil
	}

	return common.Success(map[string]interface{}{"result": calc.Subtract(valA, valB)})
}

// Multiply multiplies two numbers
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, valB, errResult := a.pair(params)
	if errResult != nil {
		return errResult, nil
	}

	return common.Success(map[string]interface{}{"result": calc.Multiply(valA, valB)})
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, valB, errResult := a.pair(params)
	if errResult != nil {
		return errResult, nil
	}

	quotient, err := calc.Divide(valA, valB)
	if err != nil {
		if errors.Is(err, calc.ErrDivisionByZero) {
			return common.Failure("division by zero")
		}
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": quotient})
}

// pair extracts the two operands shared by every arithmetic tool.
// The returned result is non-nil when a parameter is missing.
func (a *ArithmeticOps) pair(params map[string]interface{}) (float64, float64, *types.Result) {
	valA, ok := common.GetNumber(params, "a")
	if !ok {
		result, _ := common.Failure("a parameter required")
		return 0, 0, result
	}
	valB, ok := common.GetNumber(params, "b")
	if !ok {
		result, _ := common.Failure("b parameter required")
		return 0, 0, result
	}
	return valA, valB, nil
}
