package suffixtree

// traverseInfix descends from n by exactly length more code points, starting
// along the edge whose first code point is c, using Ukkonen's skip/count
// trick: only first code points are ever compared; the rest of the descent
// is accounted for purely by arithmetic on edge lengths.
//
// Precondition: a path of length code points starting with c exists from n.
func (t *Tree) traverseInfix(n nodeID, c rune, from, length int) infix {
	e, ok := t.getEdge(n, c)
	if !ok {
		panic(corrupted("traverseInfix: expected edge not found"))
	}
	switch {
	case e.length > length:
		return infix{node: n, hasRest: true, first: e.character, consumed: length}
	case e.length == length:
		return infix{node: e.child}
	default:
		nextChar := t.text[from+e.length]
		return t.traverseInfix(e.child, nextChar, from+e.length+1, length-e.length-1)
	}
}

// findNextSuffix returns the infix for the next-shorter suffix of inf.
func (t *Tree) findNextSuffix(inf infix) infix {
	if !inf.hasRest {
		slink := t.nodes[inf.node].slink
		if slink == noNode {
			panic(corrupted("findNextSuffix: node has no suffix link"))
		}
		return infix{node: slink}
	}

	e, ok := t.getEdge(inf.node, inf.first)
	if !ok {
		panic(corrupted("findNextSuffix: expected edge not found"))
	}

	switch {
	case t.nodes[inf.node].isRoot && inf.consumed > 0:
		nextChar := t.text[e.from]
		return t.traverseInfix(inf.node, nextChar, e.from+1, inf.consumed-1)
	case t.nodes[inf.node].isRoot: // consumed == 0
		return infix{node: inf.node}
	default:
		slink := t.nodes[inf.node].slink
		if slink == noNode {
			panic(corrupted("findNextSuffix: node has no suffix link"))
		}
		return t.traverseInfix(slink, inf.first, e.from, inf.consumed)
	}
}

// checkNextChar reports whether extending inf by c stays within the tree,
// without actually performing the extension.
func (t *Tree) checkNextChar(inf infix, c rune) bool {
	if inf.hasRest {
		e, ok := t.getEdge(inf.node, inf.first)
		if !ok {
			panic(corrupted("checkNextChar: expected edge not found"))
		}
		return t.text[e.from+inf.consumed] == c
	}
	_, ok := t.getEdge(inf.node, c)
	return ok
}

// infixPlusChar returns the infix after extending inf by one code point,
// promoting to the child node when doing so exactly consumes the edge. It
// reports false when the extension leaves the tree (used by Search).
func (t *Tree) infixPlusChar(inf infix, c rune) (infix, bool) {
	if !inf.hasRest {
		e, ok := t.getEdge(inf.node, c)
		if !ok {
			return infix{}, false
		}
		if e.length == 0 {
			return infix{node: e.child}, true
		}
		return infix{node: inf.node, hasRest: true, first: c, consumed: 0}, true
	}

	e, ok := t.getEdge(inf.node, inf.first)
	if !ok {
		panic(corrupted("infixPlusChar: expected edge not found"))
	}
	if t.text[e.from+inf.consumed] != c {
		return infix{}, false
	}
	if e.length == inf.consumed+1 {
		return infix{node: e.child}, true
	}
	return infix{node: inf.node, hasRest: true, first: inf.first, consumed: inf.consumed + 1}, true
}

// addCharacter performs one step of the online construction, extending the
// tree by one code point and maintaining the active point (t.active) and
// suffix links of any internal nodes born along the way.
func (t *Tree) addCharacter(c rune) {
	t.text = append(t.text, c)

	lastInner := noNode
	for !t.checkNextChar(t.active, c) {
		leaf := t.newNode()
		leafEdge := edge{character: c, from: len(t.text), length: 0, child: leaf}

		if !t.active.hasRest {
			t.setEdge(t.active.node, c, leafEdge)
			if lastInner != noNode {
				t.nodes[lastInner].slink = t.active.node
				lastInner = noNode
			}
		} else {
			splitEdge, ok := t.getEdge(t.active.node, t.active.first)
			if !ok {
				panic(corrupted("addCharacter: expected edge to split not found"))
			}
			tailChar := t.text[splitEdge.from+t.active.consumed]
			tailEdge := edge{
				character: tailChar,
				from:      splitEdge.from + t.active.consumed + 1,
				length:    splitEdge.length - t.active.consumed - 1,
				child:     splitEdge.child,
			}

			inner := t.newNode()
			t.setEdge(inner, c, leafEdge)
			t.setEdge(inner, tailChar, tailEdge)

			headEdge := edge{
				character: splitEdge.character,
				from:      splitEdge.from,
				length:    t.active.consumed,
				child:     inner,
			}
			t.setEdge(t.active.node, splitEdge.character, headEdge)

			if lastInner != noNode {
				t.nodes[lastInner].slink = inner
			}
			lastInner = inner
		}

		if t.nodes[t.active.node].isRoot && !t.active.hasRest {
			return
		}
		t.active = t.findNextSuffix(t.active)
	}

	if lastInner != noNode {
		t.nodes[lastInner].slink = t.active.node
	}
	next, ok := t.infixPlusChar(t.active, c)
	if !ok {
		panic(corrupted("addCharacter: edge present at check-time vanished on extension"))
	}
	t.active = next
}

// indexLeaves performs the single post-construction depth-first traversal
// that turns subtree-of-a-node lookups into contiguous-slice lookups: it
// sets leafFrom/leafTo on every node and appends one entry per leaf to
// t.leafDists.
func (t *Tree) indexLeaves(n nodeID, dist int) {
	start := len(t.leafDists)
	if t.isLeaf(n) {
		t.leafDists = append(t.leafDists, dist)
	}
	for _, e := range t.nodes[n].children {
		childLen := e.length
		if t.isLeaf(e.child) {
			childLen = len(t.text) - e.from
		}
		t.indexLeaves(e.child, dist+1+childLen)
	}
	t.nodes[n].leafFrom = start
	t.nodes[n].leafTo = len(t.leafDists)
}
