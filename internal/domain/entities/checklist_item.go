package entities

// ChecklistItem is a recurring checklist entry reviewed by a circle.
type ChecklistItem struct {
	ID              int         `json:"id"`
	Description     string      `json:"description"`
	Frequency       string      `json:"frequency"`
	Link            string      `json:"link"`
	PrivateToCircle bool        `json:"private_to_circle"`
	Links           ReportLinks `json:"links"`
}

// Kind returns KindChecklistItem.
func (c *ChecklistItem) Kind() Kind { return KindChecklistItem }

// Identifier returns the checklist item id.
func (c *ChecklistItem) Identifier() int { return c.ID }

// ToParams dumps the checklist item's writable fields.
func (c *ChecklistItem) ToParams() map[string]any {
	p := make(map[string]any)
	if c.ID != 0 {
		p["id"] = c.ID
	}
	if c.Description != "" {
		p["description"] = c.Description
	}
	if c.Frequency != "" {
		p["frequency"] = c.Frequency
	}
	if c.Link != "" {
		p["link"] = c.Link
	}
	if c.PrivateToCircle {
		p["private_to_circle"] = true
	}
	return p
}
