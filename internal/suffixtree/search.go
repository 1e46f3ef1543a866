package suffixtree

import "unicode/utf8"

// Search returns every occurrence of part in the indexed text, each extended
// by up to contextLen trailing code points. An empty part enumerates every
// suffix-start of the text. A part that does not occur in the text yields a
// nil slice. Result order is the traversal order recorded during leaf
// indexing; callers must treat it as unordered.
//
// Search does not allocate on the traversal path; it allocates only the
// returned strings and the slice that holds them.
func (t *Tree) Search(part string, contextLen int) []string {
	inf := infix{node: t.root}
	for _, c := range part {
		next, ok := t.infixPlusChar(inf, c)
		if !ok {
			return nil
		}
		inf = next
	}

	node := inf.node
	if inf.hasRest {
		e, ok := t.getEdge(inf.node, inf.first)
		if !ok {
			panic(corrupted("Search: expected edge not found"))
		}
		node = e.child
	}

	leafFrom, leafTo := t.nodes[node].leafFrom, t.nodes[node].leafTo
	partLen := utf8.RuneCountInString(part)
	lastValid := len(t.text) - 1 // excludes the sentinel
	result := make([]string, 0, leafTo-leafFrom)
	for _, dist := range t.leafDists[leafFrom:leafTo] {
		from := len(t.text) - dist
		to := from + partLen + contextLen
		if to > lastValid {
			to = lastValid
		}
		result = append(result, t.original[t.runeOffsets[from]:t.runeOffsets[to]])
	}
	return result
}
