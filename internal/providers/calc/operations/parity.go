package operations

import (
	"context"

	"github.com/calcware/numerics/internal/calc"
	"github.com/calcware/numerics/internal/providers/calc/common"
	"github.com/calcware/numerics/internal/types"
)

// ParityOps handles parity predicates
type ParityOps struct {
	*common.CalcOps
}

// GetTools returns parity tool definitions
func (p *ParityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.is_even",
			Name:        "Is Even",
			Description: "Check whether a number is divisible by 2",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Number to test", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// IsEven checks divisibility by 2
func (p *ParityOps) IsEven(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetNumber(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}
	if err := common.ValidateNumber(n, "n"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": calc.IsEven(n)})
}
