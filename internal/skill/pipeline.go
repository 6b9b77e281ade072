package skill

import (
	"context"
	"fmt"
)

// Pipeline chains functions: each output becomes the next function's input.
type Pipeline struct {
	functions []Function
}

// NewPipeline resolves qualifiedNames against the registry. All names are
// checked before the pipeline can be used.
func NewPipeline(registry *Registry, qualifiedNames ...string) (*Pipeline, error) {
	if len(qualifiedNames) == 0 {
		return nil, fmt.Errorf("pipeline needs at least one function")
	}
	if err := registry.Require(qualifiedNames...); err != nil {
		return nil, err
	}

	functions := make([]Function, 0, len(qualifiedNames))
	for _, name := range qualifiedNames {
		fn, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}

	return &Pipeline{functions: functions}, nil
}

// Run invokes the functions in order on a copy of vars and returns the last output.
func (p *Pipeline) Run(ctx context.Context, vars Variables) (string, error) {
	state := vars.Clone()

	var output string
	for _, fn := range p.functions {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		out, err := fn.Invoke(ctx, state)
		if err != nil {
			return "", err
		}
		output = out
		state[InputKey] = out
	}

	return output, nil
}

// Names returns the qualified names of the chained functions.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.functions))
	for i, fn := range p.functions {
		names[i] = QualifiedName(fn.Plugin(), fn.Name())
	}
	return names
}
