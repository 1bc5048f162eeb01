// Package sequences implements array transformation tools.
package sequences

import (
	"context"

	"github.com/calcware/numerics/internal/calc"
	"github.com/calcware/numerics/internal/providers/calc/common"
	"github.com/calcware/numerics/internal/types"
)

// PipelineOps handles sequence transformation pipelines
type PipelineOps struct {
	*common.CalcOps
}

// GetTools returns pipeline tool definitions
func (p *PipelineOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.process_array",
			Name:        "Process Array",
			Description: "Keep strictly-positive numbers, double them, sort ascending",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to transform", Required: true},
			},
			Returns: "array",
		},
	}
}

// ProcessArray filters positives, doubles, and sorts ascending
func (p *PipelineOps) ProcessArray(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok {
		return common.Failure("numbers array required")
	}
	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": calc.ProcessArray(numbers)})
}
