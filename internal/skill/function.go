// Package skill holds the prompt template store, the typed function registry
// and the pipeline that chains registered functions.
package skill

import (
	"context"
	"maps"
	"strings"
)

// InputKey is the variable that carries the previous function's output.
const InputKey = "input"

// Variables are the named arguments of a function invocation.
type Variables map[string]string

// NewVariables builds a variable set whose input is input.
func NewVariables(input string) Variables {
	return Variables{InputKey: input}
}

func (v Variables) Input() string {
	return v[InputKey]
}

// Clone returns an independent copy so one run cannot leak state into the next.
func (v Variables) Clone() Variables {
	if v == nil {
		return Variables{}
	}
	return maps.Clone(v)
}

// Function is a registered, invocable unit: a prompt template or a Go callable.
type Function interface {
	Name() string
	Plugin() string
	Description() string
	Invoke(ctx context.Context, vars Variables) (string, error)
}

// QualifiedName is the registry key of a function.
func QualifiedName(plugin, name string) string {
	return plugin + "." + name
}

// SplitQualifiedName is the inverse of QualifiedName.
func SplitQualifiedName(qualified string) (plugin, name string, ok bool) {
	return strings.Cut(qualified, ".")
}
