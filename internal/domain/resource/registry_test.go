package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

func TestKindFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  entities.Kind
	}{
		{"circle", entities.KindCircle},
		{"circles", entities.KindCircle},
		{"Circles", entities.KindCircle},
		{"role", entities.KindRole},
		{"person", entities.KindPerson},
		{"people", entities.KindPerson},
		{"checklist_item", entities.KindChecklistItem},
		{"checklist-items", entities.KindChecklistItem},
		{"checklist items", entities.KindChecklistItem},
		{" triggers ", entities.KindTrigger},
	}

	for _, tt := range tests {
		kind, ok := KindFromToken(tt.token)
		require.True(t, ok, "token %q", tt.token)
		assert.Equal(t, tt.want, kind)
	}

	_, ok := KindFromToken("widgets")
	assert.False(t, ok)
}

func TestLookup_EveryKindRegistered(t *testing.T) {
	for _, kind := range Kinds() {
		desc, ok := Lookup(kind)
		require.True(t, ok)
		assert.NotEmpty(t, desc.Path)
		assert.NotEmpty(t, desc.EnvelopeKey)
		assert.NotEmpty(t, desc.Fields)
		assert.NotNil(t, desc.New)
		assert.Equal(t, kind, desc.New().Kind())
	}
	assert.Len(t, Kinds(), 8)
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	raw := json.RawMessage(`{"id": 5, "name": "Ops", "organization_id": 99, "color": "blue"}`)

	obj, err := Decode(entities.KindCircle, raw)
	require.NoError(t, err)

	circle := obj.(*entities.Circle)
	assert.Equal(t, 5, circle.ID)
	assert.Equal(t, "Ops", circle.Name)
}

// Decoding a record and dumping it back reproduces exactly the accepted
// fields present in the input, independent of key order.
func TestRoundTrip_AcceptedFields(t *testing.T) {
	tests := []struct {
		kind entities.Kind
		raw  string
		want map[string]any
	}{
		{
			kind: entities.KindCircle,
			raw:  `{"strategy": "grow", "id": 5, "name": "Ops"}`,
			want: map[string]any{"id": 5, "name": "Ops", "strategy": "grow"},
		},
		{
			kind: entities.KindRole,
			raw:  `{"purpose": "steer", "name": "Lead Link", "id": 7, "links": {"circle": 5}}`,
			want: map[string]any{"id": 7, "name": "Lead Link", "purpose": "steer"},
		},
		{
			kind: entities.KindProject,
			raw:  `{"id": 3, "status": "Current", "description": "Ship it", "value": 8}`,
			want: map[string]any{"id": 3, "status": "Current", "description": "Ship it", "value": 8},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			obj, err := Decode(tt.kind, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, obj.ToParams())
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lead Link", "lead_link"},
		{"Rep Link!", "rep_link"},
		{"  Facilitator  ", "facilitator"},
		{"R&D  Circle", "rd_circle"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
