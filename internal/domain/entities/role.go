package entities

// Role is a role within a circle. A role whose SupportingCircle link is set
// is an anchor role: it represents a child circle nested inside the role's
// owning circle.
type Role struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Purpose string    `json:"purpose"`
	Links   RoleLinks `json:"links"`
}

// RoleLinks holds related-record identifiers for a role. Circle is the owning
// circle; SupportingCircle is the child circle this role anchors (0 for
// ordinary roles).
type RoleLinks struct {
	Circle           int   `json:"circle"`
	SupportingCircle int   `json:"supporting_circle"`
	People           []int `json:"people"`
}

// IsAnchor reports whether the role anchors a child circle.
func (r *Role) IsAnchor() bool { return r.Links.SupportingCircle != 0 }

// Kind returns KindRole.
func (r *Role) Kind() Kind { return KindRole }

// Identifier returns the role id.
func (r *Role) Identifier() int { return r.ID }

// ToParams dumps the role's writable fields.
func (r *Role) ToParams() map[string]any {
	p := make(map[string]any)
	if r.ID != 0 {
		p["id"] = r.ID
	}
	if r.Name != "" {
		p["name"] = r.Name
	}
	if r.Purpose != "" {
		p["purpose"] = r.Purpose
	}
	return p
}
