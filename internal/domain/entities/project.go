package entities

// Project is a project tracked by a circle.
type Project struct {
	ID              int          `json:"id"`
	Description     string       `json:"description"`
	Status          string       `json:"status"`
	Link            string       `json:"link"`
	Value           int          `json:"value"`
	Effort          int          `json:"effort"`
	ROI             float64      `json:"roi"`
	PrivateToCircle bool         `json:"private_to_circle"`
	Links           ProjectLinks `json:"links"`
}

// ProjectLinks holds related-record identifiers for a project.
type ProjectLinks struct {
	Circle int `json:"circle"`
	Role   int `json:"role"`
	Person int `json:"person"`
}

// Kind returns KindProject.
func (p *Project) Kind() Kind { return KindProject }

// Identifier returns the project id.
func (p *Project) Identifier() int { return p.ID }

// ToParams dumps the project's writable fields.
func (p *Project) ToParams() map[string]any {
	m := make(map[string]any)
	if p.ID != 0 {
		m["id"] = p.ID
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Status != "" {
		m["status"] = p.Status
	}
	if p.Link != "" {
		m["link"] = p.Link
	}
	if p.Value != 0 {
		m["value"] = p.Value
	}
	if p.Effort != 0 {
		m["effort"] = p.Effort
	}
	if p.ROI != 0 {
		m["roi"] = p.ROI
	}
	if p.PrivateToCircle {
		m["private_to_circle"] = true
	}
	return m
}
