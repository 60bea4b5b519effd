package entities

import "time"

// Action is a next-action captured during a meeting.
type Action struct {
	ID              int       `json:"id"`
	Description     string    `json:"description"`
	PrivateToCircle bool      `json:"private_to_circle"`
	CreatedAt       time.Time `json:"created_at"`
	Links           ItemLinks `json:"links"`
}

// ItemLinks holds related-record identifiers for captured items (actions and
// triggers).
type ItemLinks struct {
	Circle int `json:"circle"`
	Person int `json:"person"`
}

// Kind returns KindAction.
func (a *Action) Kind() Kind { return KindAction }

// Identifier returns the action id.
func (a *Action) Identifier() int { return a.ID }

// ToParams dumps the action's writable fields.
func (a *Action) ToParams() map[string]any {
	p := make(map[string]any)
	if a.ID != 0 {
		p["id"] = a.ID
	}
	if a.Description != "" {
		p["description"] = a.Description
	}
	if a.PrivateToCircle {
		p["private_to_circle"] = true
	}
	return p
}
