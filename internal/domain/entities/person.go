package entities

// Person is a member of the organization.
type Person struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	ExternalID int         `json:"external_id"`
	Links      PersonLinks `json:"links"`
}

// PersonLinks holds the circles a person belongs to.
type PersonLinks struct {
	Circles []int `json:"circles"`
}

// Kind returns KindPerson.
func (p *Person) Kind() Kind { return KindPerson }

// Identifier returns the person id.
func (p *Person) Identifier() int { return p.ID }

// ToParams dumps the person's writable fields.
func (p *Person) ToParams() map[string]any {
	m := make(map[string]any)
	if p.ID != 0 {
		m["id"] = p.ID
	}
	if p.Name != "" {
		m["name"] = p.Name
	}
	if p.Email != "" {
		m["email"] = p.Email
	}
	if p.ExternalID != 0 {
		m["external_id"] = p.ExternalID
	}
	return m
}
