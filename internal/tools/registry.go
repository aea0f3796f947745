package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kgribble/s3vmcp/internal/schema"
)

// Handler executes one tool call with raw JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool is one callable operation with its declared input schema.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Handler     Handler

	compiled *gojsonschema.Schema
}

// Registry holds the tool set in registration order.
type Registry struct {
	order []string
	tools map[string]*Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register compiles the tool's input schema and adds it to the registry.
func (r *Registry) Register(t *Tool) error {
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(t.InputSchema))
	if err != nil {
		return fmt.Errorf("compiling schema for tool %q: %w", t.Name, err)
	}
	t.compiled = compiled

	r.order = append(r.order, t.Name)
	r.tools[t.Name] = t
	return nil
}

// List returns the tools in registration order.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Call validates the arguments against the tool's input schema and runs
// its handler. Structural failures (wrong types, missing required fields)
// surface as validation errors before any transport is touched.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	result, err := t.compiled.Validate(gojsonschema.NewBytesLoader(args))
	if err != nil {
		return nil, &schema.ValidationError{Field: "arguments", Message: err.Error()}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, &schema.ValidationError{Field: first.Field(), Message: first.Description()}
	}

	return t.Handler(ctx, args)
}

// typedHandler decodes raw arguments into a typed request and invokes the
// service method.
func typedHandler[T any](fn func(context.Context, *T) (any, error)) Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		req := new(T)
		if len(args) > 0 {
			if err := json.Unmarshal(args, req); err != nil {
				return nil, &schema.ValidationError{Field: "arguments", Message: err.Error()}
			}
		}
		return fn(ctx, req)
	}
}
