// Package tool holds the closed catalog of query and action tools. Both the
// manual router and the tool-calling agent dispatch through the same
// registry, so a tool exists exactly once.
package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/jaxfield/assistant/agent/contract"
)

// Invoker runs one tool against the backing store.
type Invoker func(ctx context.Context, args contract.Args) (contract.ToolResult, error)

// Descriptor declares a tool: its name, kind, the parameter schema surfaced
// to the tool-calling model, and the invoker.
type Descriptor struct {
	Name   contract.ToolName
	Kind   contract.ToolKind
	Desc   string
	Params map[string]*schema.ParameterInfo
	Invoke Invoker
}

// Registry indexes the ordered QueryTools and ActionTools collections by
// name. The index is built once; the collections are fixed at construction.
type Registry struct {
	queries []*Descriptor
	actions []*Descriptor
	byName  map[contract.ToolName]*Descriptor
}

func New(store contract.RecordStore) *Registry {
	r := &Registry{
		queries: queryTools(store),
		actions: actionTools(store),
		byName:  map[contract.ToolName]*Descriptor{},
	}
	for _, d := range r.queries {
		r.byName[d.Name] = d
	}
	for _, d := range r.actions {
		r.byName[d.Name] = d
	}
	return r
}

func (r *Registry) Lookup(name contract.ToolName) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Invoke dispatches by name. Unknown names return ErrToolNotFound; the
// dispatcher turns that into the generic apology rather than a crash.
func (r *Registry) Invoke(ctx context.Context, name contract.ToolName, args contract.Args) (contract.ToolResult, error) {
	d, ok := r.byName[name]
	if !ok {
		return contract.ToolResult{}, fmt.Errorf("%w: %s", contract.ErrToolNotFound, name)
	}
	return d.Invoke(ctx, args)
}

// ToolInfos projects the whole catalog into the schema the tool-calling
// model consumes.
func (r *Registry) ToolInfos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(r.queries)+len(r.actions))
	for _, d := range append(append([]*Descriptor{}, r.queries...), r.actions...) {
		infos = append(infos, &schema.ToolInfo{
			Name:        string(d.Name),
			Desc:        d.Desc,
			ParamsOneOf: schema.NewParamsOneOfByParams(d.Params),
		})
	}
	return infos
}

// QueryTools returns the ordered query collection.
func (r *Registry) QueryTools() []*Descriptor { return r.queries }

// ActionTools returns the ordered action collection.
func (r *Registry) ActionTools() []*Descriptor { return r.actions }
