package calc

import (
	"context"
	"fmt"

	"github.com/calcware/numerics/internal/providers/calc/common"
	"github.com/calcware/numerics/internal/providers/calc/operations"
	"github.com/calcware/numerics/internal/providers/calc/sequences"
	"github.com/calcware/numerics/internal/providers/calc/statistics"
	"github.com/calcware/numerics/internal/types"
)

// Provider implements numeric and sequence operations
type Provider struct {
	// Module instances
	arithmetic *operations.ArithmeticOps
	parity     *operations.ParityOps
	pipeline   *sequences.PipelineOps
	stats      *statistics.StatsOps
}

// NewProvider creates a modular calc provider
func NewProvider() *Provider {
	ops := &common.CalcOps{}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{CalcOps: ops},
		parity:     &operations.ParityOps{CalcOps: ops},
		pipeline:   &sequences.PipelineOps{CalcOps: ops},
		stats:      &statistics.StatsOps{CalcOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.parity.GetTools()...)
	tools = append(tools, p.pipeline.GetTools()...)
	tools = append(tools, p.stats.GetTools()...)

	return types.Service{
		ID:          "calc",
		Name:        "Calc Service",
		Description: "Numeric operations (arithmetic, parity, array pipelines, statistics)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"parity",
			"sequences",
			"statistics",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "calc.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "calc.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "calc.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "calc.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)

	// Parity predicates
	case "calc.is_even":
		return p.parity.IsEven(ctx, params, appCtx)

	// Sequence pipelines
	case "calc.process_array":
		return p.pipeline.ProcessArray(ctx, params, appCtx)

	// Statistics
	case "calc.mean":
		return p.stats.Mean(ctx, params, appCtx)
	case "calc.median":
		return p.stats.Median(ctx, params, appCtx)
	case "calc.min":
		return p.stats.Min(ctx, params, appCtx)
	case "calc.max":
		return p.stats.Max(ctx, params, appCtx)
	case "calc.sum":
		return p.stats.Sum(ctx, params, appCtx)
	case "calc.stdev":
		return p.stats.Stdev(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
