package services

import (
	"context"
	"fmt"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

// StructuralError reports flat circle/role collections that admit zero or
// multiple roots. It signals caller-side data inconsistency, not a transient
// condition.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "inconsistent hierarchy: " + e.Msg
}

// CircleNode is one node of the reconstructed circle tree. Nodes are fresh
// allocations; the flat input snapshots are never mutated.
type CircleNode struct {
	Circle   entities.Circle
	Parent   *CircleNode
	Children []*CircleNode
}

// Hierarchy rebuilds the nested circle tree from the flat circle and role
// collections. Raw circles carry no parent or child pointers; the nesting is
// synthesized entirely from anchor roles.
type Hierarchy struct {
	resources *Resources
}

// NewHierarchy creates a new Hierarchy service.
func NewHierarchy(resources *Resources) *Hierarchy {
	return &Hierarchy{resources: resources}
}

// FindRoot identifies the root circle: the one circle never anchored as a
// child by any anchor role. Nil circles or roles are fetched in full first.
func (h *Hierarchy) FindRoot(ctx context.Context, circles []*entities.Circle, roles []*entities.Role) (*entities.Circle, error) {
	circles, roles, err := h.ensureInputs(ctx, circles, roles)
	if err != nil {
		return nil, err
	}
	return findRoot(circles, roles)
}

// Build reconstructs the full tree and returns its root node. Nil circles or
// roles are fetched in full first. Circles reachable from no anchor role are
// left detached; anchor roles pointing at unknown circle ids are skipped.
func (h *Hierarchy) Build(ctx context.Context, circles []*entities.Circle, roles []*entities.Role) (*CircleNode, error) {
	circles, roles, err := h.ensureInputs(ctx, circles, roles)
	if err != nil {
		return nil, err
	}

	root, err := findRoot(circles, roles)
	if err != nil {
		return nil, err
	}

	byAnchorRole := make(map[int]*entities.Circle, len(circles))
	for _, c := range circles {
		if c.Links.SupportedRole != 0 {
			byAnchorRole[c.Links.SupportedRole] = c
		}
	}

	// Anchor roles grouped by owning circle, in input order: child order in
	// the result is stable by first appearance in the role collection.
	anchorsByOwner := make(map[int][]*entities.Role)
	for _, r := range roles {
		if r.IsAnchor() {
			anchorsByOwner[r.Links.Circle] = append(anchorsByOwner[r.Links.Circle], r)
		}
	}

	visited := map[int]bool{root.ID: true}
	rootNode := &CircleNode{Circle: *root}
	attachChildren(rootNode, anchorsByOwner, byAnchorRole, visited)
	return rootNode, nil
}

func attachChildren(parent *CircleNode, anchorsByOwner map[int][]*entities.Role, byAnchorRole map[int]*entities.Circle, visited map[int]bool) {
	for _, role := range anchorsByOwner[parent.Circle.ID] {
		child, ok := byAnchorRole[role.ID]
		if !ok || visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		node := &CircleNode{Circle: *child, Parent: parent}
		parent.Children = append(parent.Children, node)
		attachChildren(node, anchorsByOwner, byAnchorRole, visited)
	}
}

func findRoot(circles []*entities.Circle, roles []*entities.Role) (*entities.Circle, error) {
	if len(circles) == 0 {
		return nil, &StructuralError{Msg: "no circles"}
	}
	if len(circles) == 1 {
		return circles[0], nil
	}

	anchored := make(map[int]bool)
	ownsAnchor := make(map[int]bool)
	for _, r := range roles {
		if r.IsAnchor() {
			anchored[r.Links.SupportingCircle] = true
			ownsAnchor[r.Links.Circle] = true
		}
	}

	var candidates []*entities.Circle
	for _, c := range circles {
		if !anchored[c.ID] {
			candidates = append(candidates, c)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, &StructuralError{Msg: "no root: every circle is anchored as a child"}
	case 1:
		return candidates[0], nil
	}

	// Several circles are never anchored. Only one of them may own anchor
	// roles of its own; the rest are detached and any tie is a data
	// inconsistency.
	var roots []*entities.Circle
	for _, c := range candidates {
		if ownsAnchor[c.ID] {
			roots = append(roots, c)
		}
	}
	if len(roots) == 1 {
		return roots[0], nil
	}
	return nil, &StructuralError{Msg: fmt.Sprintf("ambiguous root: %d circles are never anchored", len(candidates))}
}

func (h *Hierarchy) ensureInputs(ctx context.Context, circles []*entities.Circle, roles []*entities.Role) ([]*entities.Circle, []*entities.Role, error) {
	var err error
	if circles == nil {
		circles, err = h.resources.Circles(ctx, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching circles: %w", err)
		}
	}
	if roles == nil {
		roles, err = h.resources.Roles(ctx, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching roles: %w", err)
		}
	}
	return circles, roles, nil
}
