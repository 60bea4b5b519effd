package entities

// Circle is one organizational unit. Raw circles carry no parent or child
// pointers; nesting is synthesized from roles by the hierarchy service.
type Circle struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	ShortName string      `json:"short_name"`
	Strategy  string      `json:"strategy"`
	Links     CircleLinks `json:"links"`
}

// CircleLinks holds related-record identifiers for a circle. SupportedRole is
// the role through which this circle is anchored into its parent (0 for the
// root circle).
type CircleLinks struct {
	Roles         []int `json:"roles"`
	Policies      []int `json:"policies"`
	SupportedRole int   `json:"supported_role"`
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

// Identifier returns the circle id.
func (c *Circle) Identifier() int { return c.ID }

// ToParams dumps the circle's writable fields.
func (c *Circle) ToParams() map[string]any {
	p := make(map[string]any)
	if c.ID != 0 {
		p["id"] = c.ID
	}
	if c.Name != "" {
		p["name"] = c.Name
	}
	if c.ShortName != "" {
		p["short_name"] = c.ShortName
	}
	if c.Strategy != "" {
		p["strategy"] = c.Strategy
	}
	return p
}
