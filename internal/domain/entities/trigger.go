package entities

import "time"

// Trigger is a captured event that may prompt future action.
type Trigger struct {
	ID              int       `json:"id"`
	Description     string    `json:"description"`
	PrivateToCircle bool      `json:"private_to_circle"`
	CreatedAt       time.Time `json:"created_at"`
	Links           ItemLinks `json:"links"`
}

// Kind returns KindTrigger.
func (t *Trigger) Kind() Kind { return KindTrigger }

// Identifier returns the trigger id.
func (t *Trigger) Identifier() int { return t.ID }

// ToParams dumps the trigger's writable fields.
func (t *Trigger) ToParams() map[string]any {
	p := make(map[string]any)
	if t.ID != 0 {
		p["id"] = t.ID
	}
	if t.Description != "" {
		p["description"] = t.Description
	}
	if t.PrivateToCircle {
		p["private_to_circle"] = true
	}
	return p
}
