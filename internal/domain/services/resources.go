// Package services holds the domain services: the per-kind CRUD passthrough
// and the hierarchy builder.
package services

import (
	"context"
	"fmt"

	"github.com/ersonp/orgflow/internal/domain/entities"
	"github.com/ersonp/orgflow/internal/domain/ports"
	"github.com/ersonp/orgflow/internal/domain/resource"
)

// Resources forwards typed CRUD requests to the dispatcher. All option
// normalization happens in the resource package, so every method here stays a
// thin passthrough.
type Resources struct {
	dispatcher ports.Dispatcher
}

// NewResources creates a new Resources service.
func NewResources(dispatcher ports.Dispatcher) *Resources {
	return &Resources{dispatcher: dispatcher}
}

// Get fetches records of the given kind. Options may be nil, a bare
// identifier, a filter mapping or a fetched entity; see resource.Resolve.
func (s *Resources) Get(ctx context.Context, kind entities.Kind, options any) ([]entities.Object, error) {
	desc, ok := resource.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}

	params, err := resource.Resolve(kind, options)
	if err != nil {
		return nil, err
	}

	path := desc.Path
	if id, ok := params["id"]; ok && len(params) == 1 {
		path = fmt.Sprintf("%s/%v", desc.Path, id)
		params = nil
	}

	env, err := s.dispatcher.Execute(ctx, ports.Get, path, params)
	if err != nil {
		return nil, err
	}

	return decodeRecords(desc, env)
}

// Create posts a new record. Options must be a plain mapping or an instance
// of the target kind; the created record is returned.
func (s *Resources) Create(ctx context.Context, kind entities.Kind, options any) (entities.Object, error) {
	desc, ok := resource.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}

	params, err := resource.ValidateMutation(kind, options)
	if err != nil {
		return nil, err
	}

	env, err := s.dispatcher.Execute(ctx, ports.Post, desc.Path, params)
	if err != nil {
		return nil, err
	}

	created, err := decodeRecords(desc, env)
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("creating %s: empty response", kind)
	}
	return created[0], nil
}

// Update patches a record. When id is 0 an identifier is extracted from the
// options the same way Get interprets identifiers. A successful patch
// resolves to true; the response body carries nothing useful.
func (s *Resources) Update(ctx context.Context, kind entities.Kind, id int, options any) (bool, error) {
	desc, ok := resource.Lookup(kind)
	if !ok {
		return false, fmt.Errorf("unknown resource kind %q", kind)
	}

	params, err := resource.ValidateMutation(kind, options)
	if err != nil {
		return false, err
	}

	if id == 0 {
		id, err = resource.ExtractID(kind, options)
		if err != nil {
			return false, err
		}
	}
	delete(params, "id")

	path := fmt.Sprintf("%s/%d", desc.Path, id)
	if _, err := s.dispatcher.Execute(ctx, ports.Patch, path, params); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the record identified by options. A successful delete
// resolves to true.
func (s *Resources) Delete(ctx context.Context, kind entities.Kind, options any) (bool, error) {
	desc, ok := resource.Lookup(kind)
	if !ok {
		return false, fmt.Errorf("unknown resource kind %q", kind)
	}

	id, err := resource.ExtractID(kind, options)
	if err != nil {
		return false, err
	}

	path := fmt.Sprintf("%s/%d", desc.Path, id)
	if _, err := s.dispatcher.Execute(ctx, ports.Delete, path, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Circles fetches circles matching options.
func (s *Resources) Circles(ctx context.Context, options any) ([]*entities.Circle, error) {
	objs, err := s.Get(ctx, entities.KindCircle, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Circle, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Circle)
	}
	return out, nil
}

// Roles fetches roles matching options.
func (s *Resources) Roles(ctx context.Context, options any) ([]*entities.Role, error) {
	objs, err := s.Get(ctx, entities.KindRole, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Role, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Role)
	}
	return out, nil
}

// People fetches people matching options.
func (s *Resources) People(ctx context.Context, options any) ([]*entities.Person, error) {
	objs, err := s.Get(ctx, entities.KindPerson, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Person, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Person)
	}
	return out, nil
}

// Projects fetches projects matching options.
func (s *Resources) Projects(ctx context.Context, options any) ([]*entities.Project, error) {
	objs, err := s.Get(ctx, entities.KindProject, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Project, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Project)
	}
	return out, nil
}

// Metrics fetches metrics matching options.
func (s *Resources) Metrics(ctx context.Context, options any) ([]*entities.Metric, error) {
	objs, err := s.Get(ctx, entities.KindMetric, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Metric, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Metric)
	}
	return out, nil
}

// ChecklistItems fetches checklist items matching options.
func (s *Resources) ChecklistItems(ctx context.Context, options any) ([]*entities.ChecklistItem, error) {
	objs, err := s.Get(ctx, entities.KindChecklistItem, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.ChecklistItem, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.ChecklistItem)
	}
	return out, nil
}

// Actions fetches actions matching options.
func (s *Resources) Actions(ctx context.Context, options any) ([]*entities.Action, error) {
	objs, err := s.Get(ctx, entities.KindAction, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Action, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Action)
	}
	return out, nil
}

// Triggers fetches triggers matching options.
func (s *Resources) Triggers(ctx context.Context, options any) ([]*entities.Trigger, error) {
	objs, err := s.Get(ctx, entities.KindTrigger, options)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Trigger, len(objs))
	for i, o := range objs {
		out[i] = o.(*entities.Trigger)
	}
	return out, nil
}

func decodeRecords(desc resource.Descriptor, env ports.Envelope) ([]entities.Object, error) {
	records, err := env.Records(desc.EnvelopeKey)
	if err != nil {
		return nil, err
	}
	objs := make([]entities.Object, 0, len(records))
	for _, raw := range records {
		obj, err := resource.Decode(desc.Kind, raw)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}
