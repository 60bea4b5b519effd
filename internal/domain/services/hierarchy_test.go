package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/orgflow/internal/domain/entities"
	"github.com/ersonp/orgflow/internal/domain/mocks"
)

func circle(id int, name string, supportedRole int) *entities.Circle {
	return &entities.Circle{
		ID:    id,
		Name:  name,
		Links: entities.CircleLinks{SupportedRole: supportedRole},
	}
}

func anchorRole(id, owner, child int) *entities.Role {
	return &entities.Role{
		ID:    id,
		Name:  "Circle Anchor",
		Links: entities.RoleLinks{Circle: owner, SupportingCircle: child},
	}
}

func newHierarchy() *Hierarchy {
	return NewHierarchy(NewResources(mocks.NewDispatcher()))
}

func TestFindRoot_SingleCircleNoRoles(t *testing.T) {
	u0 := circle(1, "General", 0)

	root, err := newHierarchy().FindRoot(context.Background(), []*entities.Circle{u0}, []*entities.Role{})
	require.NoError(t, err)
	assert.Equal(t, u0, root)
}

func TestFindRoot_Chain(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Ops", 10)
	u2 := circle(3, "Support", 11)
	roles := []*entities.Role{
		anchorRole(10, 1, 2),
		anchorRole(11, 2, 3),
	}

	root, err := newHierarchy().FindRoot(context.Background(), []*entities.Circle{u0, u1, u2}, roles)
	require.NoError(t, err)
	assert.Equal(t, u0, root)
}

func TestFindRoot_AmbiguousRoot(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Shadow", 0)

	_, err := newHierarchy().FindRoot(context.Background(), []*entities.Circle{u0, u1}, []*entities.Role{})

	var structErr *StructuralError
	require.ErrorAs(t, err, &structErr)
}

func TestFindRoot_NoCircles(t *testing.T) {
	_, err := newHierarchy().FindRoot(context.Background(), []*entities.Circle{}, []*entities.Role{})

	var structErr *StructuralError
	require.ErrorAs(t, err, &structErr)
}

func TestFindRoot_EveryCircleAnchored(t *testing.T) {
	u0 := circle(1, "A", 11)
	u1 := circle(2, "B", 10)
	roles := []*entities.Role{
		anchorRole(10, 1, 2),
		anchorRole(11, 2, 1),
	}

	_, err := newHierarchy().FindRoot(context.Background(), []*entities.Circle{u0, u1}, roles)

	var structErr *StructuralError
	require.ErrorAs(t, err, &structErr)
}

// A detached circle owning no anchors does not make the root ambiguous.
func TestFindRoot_IgnoresDetachedCircle(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Ops", 10)
	orphan := circle(9, "Detached", 0)
	roles := []*entities.Role{anchorRole(10, 1, 2)}

	root, err := newHierarchy().FindRoot(context.Background(), []*entities.Circle{u0, u1, orphan}, roles)
	require.NoError(t, err)
	assert.Equal(t, u0, root)
}

func TestBuild_Chain(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Ops", 10)
	u2 := circle(3, "Support", 11)
	roles := []*entities.Role{
		anchorRole(10, 1, 2),
		anchorRole(11, 2, 3),
	}

	root, err := newHierarchy().Build(context.Background(), []*entities.Circle{u0, u1, u2}, roles)
	require.NoError(t, err)

	assert.Equal(t, "General", root.Circle.Name)
	assert.Nil(t, root.Parent)
	require.Len(t, root.Children, 1)

	child := root.Children[0]
	assert.Equal(t, "Ops", child.Circle.Name)
	assert.Equal(t, root, child.Parent)
	require.Len(t, child.Children, 1)

	grandchild := child.Children[0]
	assert.Equal(t, "Support", grandchild.Circle.Name)
	assert.Empty(t, grandchild.Children)
}

func TestBuild_ChildOrderFollowsRoleOrder(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Ops", 11)
	u2 := circle(3, "Sales", 10)
	roles := []*entities.Role{
		anchorRole(10, 1, 3),
		anchorRole(11, 1, 2),
	}

	root, err := newHierarchy().Build(context.Background(), []*entities.Circle{u0, u1, u2}, roles)
	require.NoError(t, err)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "Sales", root.Children[0].Circle.Name)
	assert.Equal(t, "Ops", root.Children[1].Circle.Name)
}

func TestBuild_SkipsAnchorToUnknownCircle(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Ops", 10)
	roles := []*entities.Role{
		anchorRole(10, 1, 2),
		anchorRole(99, 1, 777), // no circle answers to this anchor
	}

	root, err := newHierarchy().Build(context.Background(), []*entities.Circle{u0, u1}, roles)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "Ops", root.Children[0].Circle.Name)
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	u0 := circle(1, "General", 0)
	u1 := circle(2, "Ops", 10)
	roles := []*entities.Role{anchorRole(10, 1, 2)}

	root, err := newHierarchy().Build(context.Background(), []*entities.Circle{u0, u1}, roles)
	require.NoError(t, err)

	root.Circle.Name = "Renamed"
	assert.Equal(t, "General", u0.Name, "result nodes must be fresh copies")
}

func TestBuild_FetchesMissingInputs(t *testing.T) {
	dispatcher := mocks.NewDispatcher()
	dispatcher.Respond("circles", "circles", []map[string]any{
		{"id": 1, "name": "General"},
		{"id": 2, "name": "Ops", "links": map[string]any{"supported_role": 10}},
	})
	dispatcher.Respond("roles", "roles", []map[string]any{
		{"id": 10, "name": "Ops Anchor", "links": map[string]any{"circle": 1, "supporting_circle": 2}},
	})

	resources := NewResources(dispatcher)
	root, err := NewHierarchy(resources).Build(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "General", root.Circle.Name)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "Ops", root.Children[0].Circle.Name)
	assert.Len(t, dispatcher.Calls, 2)
}
