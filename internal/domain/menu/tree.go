package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxDepth bounds every ancestor-chain walk. A well-formed tree never
// comes close; hitting the bound means the stored parent links are
// corrupt.
const MaxDepth = 32

// ErrCycleDetected reports that a menu appears in its own ancestor
// chain.
var ErrCycleDetected = errors.New("menu hierarchy cycle detected")

// ParentLookup resolves a menu by ID during ancestor walks. Returning
// (nil, nil) means the parent no longer exists, which terminates the
// walk.
type ParentLookup func(id uint) (*Menu, error)

// ComputeDepth walks the parent chain from parentID to the root and
// returns the depth a node with that parent would have. A nil parentID
// is a root at depth 0.
func ComputeDepth(parentID *uint, lookup ParentLookup) (int, error) {
	if parentID == nil {
		return 0, nil
	}

	depth := 0
	visited := make(map[uint]bool)
	current := parentID

	for current != nil {
		if visited[*current] {
			return 0, fmt.Errorf("ancestor %d revisited: %w", *current, ErrCycleDetected)
		}
		if depth >= MaxDepth {
			return 0, fmt.Errorf("ancestor chain exceeds %d levels: %w", MaxDepth, ErrCycleDetected)
		}
		visited[*current] = true

		parent, err := lookup(*current)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve ancestor %d: %w", *current, err)
		}
		if parent == nil {
			break
		}

		depth++
		current = parent.ParentID()
	}

	return depth, nil
}

// WouldCreateCycle reports whether re-parenting nodeID under
// proposedParentID would make the node its own ancestor. It fails
// closed: any lookup error is treated as a cycle.
func WouldCreateCycle(nodeID uint, proposedParentID *uint, lookup ParentLookup) (bool, error) {
	if proposedParentID == nil {
		return false, nil
	}
	if *proposedParentID == nodeID {
		return true, nil
	}

	steps := 0
	visited := make(map[uint]bool)
	current := proposedParentID

	for current != nil {
		if *current == nodeID {
			return true, nil
		}
		if visited[*current] || steps >= MaxDepth {
			return true, ErrCycleDetected
		}
		visited[*current] = true
		steps++

		ancestor, err := lookup(*current)
		if err != nil {
			return true, fmt.Errorf("failed to resolve ancestor %d: %w", *current, err)
		}
		if ancestor == nil {
			break
		}
		current = ancestor.ParentID()
	}

	return false, nil
}

// CascadeDepths recomputes the depth of every descendant of root using
// the in-memory children index. Root's own depth must already be
// correct. Returns every menu whose depth changed.
func CascadeDepths(root *Menu, childrenByParent map[uint][]*Menu) []*Menu {
	var changed []*Menu

	stack := []*Menu{root}
	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range childrenByParent[parent.ID()] {
			want := parent.Depth() + 1
			if child.Depth() != want {
				child.setDepth(want)
				changed = append(changed, child)
			}
			stack = append(stack, child)
		}
	}

	return changed
}

// SortSiblings orders menus the way every listing does: display order
// ascending, then name ascending.
func SortSiblings(menus []*Menu) {
	sort.SliceStable(menus, func(i, j int) bool {
		if menus[i].DisplayOrder() != menus[j].DisplayOrder() {
			return menus[i].DisplayOrder() < menus[j].DisplayOrder()
		}
		return strings.ToLower(menus[i].Name()) < strings.ToLower(menus[j].Name())
	})
}

// ChildrenIndex groups menus by parent ID, each sibling group sorted.
func ChildrenIndex(menus []*Menu) map[uint][]*Menu {
	index := make(map[uint][]*Menu)
	for _, m := range menus {
		if m.ParentID() != nil {
			index[*m.ParentID()] = append(index[*m.ParentID()], m)
		}
	}
	for _, siblings := range index {
		SortSiblings(siblings)
	}
	return index
}

// Roots returns the parent-less menus in sibling order.
func Roots(menus []*Menu) []*Menu {
	var roots []*Menu
	for _, m := range menus {
		if m.IsRoot() {
			roots = append(roots, m)
		}
	}
	SortSiblings(roots)
	return roots
}
