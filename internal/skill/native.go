package skill

import "context"

// NativeFunction exposes a Go callable through the registry.
type NativeFunction struct {
	plugin      string
	name        string
	description string
	fn          func(ctx context.Context, vars Variables) (string, error)
}

func NewNativeFunction(plugin, name, description string, fn func(ctx context.Context, vars Variables) (string, error)) *NativeFunction {
	return &NativeFunction{
		plugin:      plugin,
		name:        name,
		description: description,
		fn:          fn,
	}
}

func (f *NativeFunction) Name() string        { return f.name }
func (f *NativeFunction) Plugin() string      { return f.plugin }
func (f *NativeFunction) Description() string { return f.description }

func (f *NativeFunction) Invoke(ctx context.Context, vars Variables) (string, error) {
	return f.fn(ctx, vars)
}
