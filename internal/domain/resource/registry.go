// Package resource maps resource kinds to their request descriptors and
// normalizes heterogeneous caller options into canonical request parameters.
package resource

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

// Descriptor holds everything the client needs to issue requests for one
// resource kind.
type Descriptor struct {
	Kind        entities.Kind
	Path        string   // plural request-path segment
	EnvelopeKey string   // key holding the record list in a response envelope
	Fields      []string // accepted create/update fields
	New         func() entities.Object
}

// Accepts reports whether name is in the kind's accepted field set.
func (d Descriptor) Accepts(name string) bool {
	return slices.Contains(d.Fields, name)
}

var registry = map[entities.Kind]Descriptor{
	entities.KindCircle: {
		Kind:        entities.KindCircle,
		Path:        "circles",
		EnvelopeKey: "circles",
		Fields:      []string{"id", "name", "short_name", "strategy"},
		New:         func() entities.Object { return &entities.Circle{} },
	},
	entities.KindRole: {
		Kind:        entities.KindRole,
		Path:        "roles",
		EnvelopeKey: "roles",
		Fields:      []string{"id", "name", "purpose"},
		New:         func() entities.Object { return &entities.Role{} },
	},
	entities.KindPerson: {
		Kind:        entities.KindPerson,
		Path:        "people",
		EnvelopeKey: "people",
		Fields:      []string{"id", "name", "email", "external_id"},
		New:         func() entities.Object { return &entities.Person{} },
	},
	entities.KindProject: {
		Kind:        entities.KindProject,
		Path:        "projects",
		EnvelopeKey: "projects",
		Fields:      []string{"id", "description", "status", "link", "value", "effort", "roi", "private_to_circle"},
		New:         func() entities.Object { return &entities.Project{} },
	},
	entities.KindMetric: {
		Kind:        entities.KindMetric,
		Path:        "metrics",
		EnvelopeKey: "metrics",
		Fields:      []string{"id", "description", "frequency", "link", "private_to_circle"},
		New:         func() entities.Object { return &entities.Metric{} },
	},
	entities.KindChecklistItem: {
		Kind:        entities.KindChecklistItem,
		Path:        "checklist_items",
		EnvelopeKey: "checklist_items",
		Fields:      []string{"id", "description", "frequency", "link", "private_to_circle"},
		New:         func() entities.Object { return &entities.ChecklistItem{} },
	},
	entities.KindAction: {
		Kind:        entities.KindAction,
		Path:        "actions",
		EnvelopeKey: "actions",
		Fields:      []string{"id", "description", "private_to_circle"},
		New:         func() entities.Object { return &entities.Action{} },
	},
	entities.KindTrigger: {
		Kind:        entities.KindTrigger,
		Path:        "triggers",
		EnvelopeKey: "triggers",
		Fields:      []string{"id", "description", "private_to_circle"},
		New:         func() entities.Object { return &entities.Trigger{} },
	},
}

// tokens maps singular and plural spellings to kinds.
var tokens = map[string]entities.Kind{}

func init() {
	for kind, desc := range registry {
		tokens[string(kind)] = kind
		tokens[desc.Path] = kind
	}
}

// Lookup returns the descriptor for a kind.
func Lookup(kind entities.Kind) (Descriptor, bool) {
	d, ok := registry[kind]
	return d, ok
}

// Kinds returns every registered kind. Order is unspecified.
func Kinds() []entities.Kind {
	out := make([]entities.Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}

// KindFromToken resolves a resource-kind token, accepting singular and plural
// spellings in any case, with hyphens or spaces in place of underscores.
func KindFromToken(token string) (entities.Kind, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.ReplaceAll(t, "-", "_")
	t = strings.ReplaceAll(t, " ", "_")
	kind, ok := tokens[t]
	return kind, ok
}

// Decode constructs a typed entity from one raw record, ignoring unknown keys.
func Decode(kind entities.Kind, raw json.RawMessage) (entities.Object, error) {
	desc, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
	obj := desc.New()
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", kind, err)
	}
	return obj, nil
}
