package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/registry"
)

// Page is a set of controls sharing one validator registry, the unit a host
// submits and summarises.
type Page struct {
	registry *registry.Registry
	controls map[string]Control
	order    []string
}

// NewPage builds a control for each id, in order, seeded from values and
// published into a fresh registry. With no ids every loaded field is used.
// notify, when set, receives every committed value.
func (o *Orchestrator) NewPage(ctx context.Context, ids []string, values map[string]string, notify field.NotifyFunc) (*Page, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = o.store.IDs()
	}

	page := &Page{
		registry: registry.New(registry.WithLogger(o.logger)),
		controls: make(map[string]Control, len(ids)),
	}
	for _, id := range ids {
		control, err := o.Control(ctx, id, values[id],
			field.WithRegistry(page.registry),
			field.WithNotify(notify),
		)
		if err != nil {
			return nil, err
		}
		page.controls[control.ID()] = control
		page.order = append(page.order, control.ID())
	}
	o.logger.Debug().Int("fields", len(page.order)).Msg("page built")
	return page, nil
}

// Submit evaluates every control in registration order and returns the
// failures for the error summary.
func (p *Page) Submit() []registry.Failure {
	return p.registry.EvaluateAll()
}

// Control returns the control registered for id.
func (p *Page) Control(id string) (Control, bool) {
	c, ok := p.controls[id]
	return c, ok
}

// IDs lists the control ids in registration order.
func (p *Page) IDs() []string {
	return append([]string(nil), p.order...)
}

// Registry exposes the page's validator registry.
func (p *Page) Registry() *registry.Registry {
	return p.registry
}

// Change routes a value edit to the named control: text inputs validate and
// commit, radios select the item.
func (p *Page) Change(id, value string) error {
	control, ok := p.controls[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	switch c := control.(type) {
	case *field.TextInput:
		c.Change(value)
		return nil
	case *field.Radios:
		return c.Select(value)
	default:
		return fmt.Errorf("orchestrator: field %q does not accept changes", id)
	}
}
