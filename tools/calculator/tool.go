package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Knetic/govaluate"

	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// Operation is a basic arithmetic operation
type Operation = string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// expressions maps operations to govaluate expressions over the a and b parameters
var expressions = map[Operation]*govaluate.EvaluableExpression{}

func init() {
	for op, exp := range map[Operation]string{
		Add:      "a + b",
		Subtract: "a - b",
		Multiply: "a * b",
		Divide:   "a / b",
	} {
		expr, err := govaluate.NewEvaluableExpression(exp)
		if err != nil {
			panic(err)
		}
		expressions[op] = expr
	}
}

// Input Tool for performing basic arithmetic with two numbers.
type Input struct {
	schema.Base
	// A The first number.
	A float64 `json:"a" jsonschema:"title=a,description=The first number."`
	// B The second number.
	B float64 `json:"b" jsonschema:"title=b,description=The second number."`
	// Operation The operation to perform.
	Operation Operation `json:"operation" jsonschema:"title=operation,enum=add,enum=subtract,enum=multiply,enum=divide,description=The operation to perform." validate:"required,oneof=add subtract multiply divide"`
}

func NewInput(a float64, b float64, op Operation) *Input {
	return &Input{
		A:         a,
		B:         b,
		Operation: op,
	}
}

// Output Schema for the output of the calculator tool
type Output struct {
	schema.Base
	// Result Result of the calculation
	Result float64 `json:"result" jsonschema:"title=result,description=Result of the calculation."`
}

func NewOutput(result float64) *Output {
	return &Output{
		Result: result,
	}
}

// String formats the result the shortest way, 5535 rather than 5535.000000
func (o Output) String() string {
	return strconv.FormatFloat(o.Result, 'f', -1, 64)
}

type Tool struct {
	tools.Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("calculate")
	}
	if ret.Description() == "" {
		ret.SetDescription("A simple calculator for basic operations (add, subtract, multiply, divide).")
	}
	return ret
}

// Run executes the calculation. Division by zero yields zero instead of an error.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	exp, ok := expressions[input.Operation]
	if !ok {
		return fmt.Errorf("unknown operation: %s", input.Operation)
	}
	if input.Operation == Divide && input.B == 0 {
		*output = *NewOutput(0)
		return nil
	}
	result, err := exp.Evaluate(map[string]interface{}{
		"a": input.A,
		"b": input.B,
	})
	if err != nil {
		return err
	}
	value, ok := result.(float64)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}
	*output = *NewOutput(value)
	return nil
}
