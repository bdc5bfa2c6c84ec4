package domain

import (
	m "doccov.dev/pkg/doccov/internal/model"
)

// FilterNodes applies the whole-file policies to the nodes produced by Visit:
// empty-module suppression, the include whitelist, nested function and
// nested class suppression, and the google-style class/__init__ merge.
//
// The input is never modified. Surviving nodes keep their IDs, so Parent still
// refers to the visited arena even when the parent itself was dropped; parents
// are looked up by ID, which makes filtering an already filtered list a no-op.
func FilterNodes(nodes []m.CoverageNode, cfg *m.Config) []m.CoverageNode {
	if len(nodes) == 0 {
		return nil
	}

	if cfg.Module && len(nodes) == 1 {
		return nil
	}

	arena := make([]m.CoverageNode, len(nodes))
	copy(arena, nodes)

	kept := make([]int, 0, len(arena))
	for i := range arena {
		kept = append(kept, i)
	}

	kept = filterIncluded(arena, kept, cfg)
	if cfg.NestedFunctions {
		kept = dropNestedFunctions(arena, kept)
	}

	if cfg.NestedClasses {
		kept = dropNestedClasses(arena, kept)
	}

	if cfg.DocstringStyle == m.StyleGoogle {
		mergeInitDocstrings(arena, kept)
	}

	if len(kept) == 0 {
		return nil
	}

	filtered := make([]m.CoverageNode, 0, len(kept))
	for _, id := range kept {
		filtered = append(filtered, arena[id])
	}

	return filtered
}

// filterIncluded keeps only nodes whose name matches an include pattern. The
// module is re-admitted in front when anything else survived. Each name is
// matched on its own: children of a matching class are not pulled in.
func filterIncluded(arena []m.CoverageNode, kept []int, cfg *m.Config) []int {
	if len(cfg.IncludeRegex) == 0 {
		return kept
	}

	module := m.NoParent
	matched := make([]int, 0, len(kept))

	for _, id := range kept {
		node := arena[id]
		if node.Kind == m.KindModule {
			module = id
			continue
		}

		for _, re := range cfg.IncludeRegex {
			if re.MatchString(node.Name) {
				matched = append(matched, id)
				break
			}
		}
	}

	if len(matched) == 0 {
		return nil
	}

	if module == m.NoParent {
		return matched
	}

	return append([]int{module}, matched...)
}

func dropNestedFunctions(arena []m.CoverageNode, kept []int) []int {
	out := kept[:0:0]

	for _, id := range kept {
		if !arena[id].NestedFunction {
			out = append(out, id)
		}
	}

	return out
}

// dropNestedClasses removes nested classes and every node declared directly
// inside one. The nested set is taken from kept before anything is removed.
func dropNestedClasses(arena []m.CoverageNode, kept []int) []int {
	nested := make(map[int]struct{})

	for _, id := range kept {
		if arena[id].NestedClass {
			nested[arena[id].ID] = struct{}{}
		}
	}

	if len(nested) == 0 {
		return kept
	}

	out := kept[:0:0]

	for _, id := range kept {
		if _, ok := nested[arena[id].ID]; ok {
			continue
		}

		if _, ok := nested[arena[id].Parent]; ok {
			continue
		}

		out = append(out, id)
	}

	return out
}

// mergeInitDocstrings makes a class and its __init__ share documented status,
// only ever flipping false to true.
func mergeInitDocstrings(arena []m.CoverageNode, kept []int) {
	byID := make(map[int]int, len(kept))
	for _, idx := range kept {
		byID[arena[idx].ID] = idx
	}

	for _, idx := range kept {
		node := &arena[idx]
		if node.Kind != m.KindFunction || node.Name != initMethodName || !node.HasParent() {
			continue
		}

		parentIdx, ok := byID[node.Parent]
		if !ok {
			continue
		}

		parent := &arena[parentIdx]
		if parent.Kind != m.KindClass {
			continue
		}

		switch {
		case !node.Documented && parent.Documented:
			node.Documented = true
		case node.Documented && !parent.Documented:
			parent.Documented = true
		}
	}
}
