package entities

// Metric is a recurring measurement reported to a circle.
type Metric struct {
	ID              int         `json:"id"`
	Description     string      `json:"description"`
	Frequency       string      `json:"frequency"`
	Link            string      `json:"link"`
	PrivateToCircle bool        `json:"private_to_circle"`
	Links           ReportLinks `json:"links"`
}

// ReportLinks holds related-record identifiers for circle-reported items
// (metrics and checklist items).
type ReportLinks struct {
	Circle int `json:"circle"`
	Role   int `json:"role"`
	Person int `json:"person"`
}

// Kind returns KindMetric.
func (m *Metric) Kind() Kind { return KindMetric }

// Identifier returns the metric id.
func (m *Metric) Identifier() int { return m.ID }

// ToParams dumps the metric's writable fields.
func (m *Metric) ToParams() map[string]any {
	p := make(map[string]any)
	if m.ID != 0 {
		p["id"] = m.ID
	}
	if m.Description != "" {
		p["description"] = m.Description
	}
	if m.Frequency != "" {
		p["frequency"] = m.Frequency
	}
	if m.Link != "" {
		p["link"] = m.Link
	}
	if m.PrivateToCircle {
		p["private_to_circle"] = true
	}
	return p
}
