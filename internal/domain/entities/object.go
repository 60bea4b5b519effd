// Package entities defines the typed resource snapshots exchanged with the
// org-structure service. Entities are immutable point-in-time values: they are
// decoded from one response and never live-synced back to the server.
package entities

// Kind identifies a resource category on the remote service.
type Kind string

// The fixed set of resource kinds.
const (
	KindCircle        Kind = "circle"
	KindRole          Kind = "role"
	KindPerson        Kind = "person"
	KindProject       Kind = "project"
	KindMetric        Kind = "metric"
	KindChecklistItem Kind = "checklist_item"
	KindAction        Kind = "action"
	KindTrigger       Kind = "trigger"
)

// Object is implemented by every entity type. Identifier returns the record
// id (0 when unset) and ToParams dumps the entity's accepted create/update
// fields, omitting zero values.
type Object interface {
	Kind() Kind
	Identifier() int
	ToParams() map[string]any
}
