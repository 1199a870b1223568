package engine

/*
Aho–Corasick scanner for exact, unambiguous probes.

- buildAC(pats) builds a trie with failure links.
- scanAC(seq, nodes, fn) calls fn(endPos, patIdx) for every occurrence.
*/

// node is one state in the automaton.
type node struct {
	next [256]int32 // 0 => absent (root is state 0)
	fail int32
	out  []int // pattern indexes that end at this state
}

// buildAC constructs the automaton for all patterns.
func buildAC(pats [][]byte) []node {
	nodes := make([]node, 1) // state 0 = root

	// 1) Build trie edges
	for i, p := range pats {
		cur := int32(0)
		for _, b := range p {
			if nodes[cur].next[b] == 0 {
				nodes = append(nodes, node{})
				nodes[cur].next[b] = int32(len(nodes) - 1)
			}
			cur = nodes[cur].next[b]
		}
		nodes[cur].out = append(nodes[cur].out, i)
	}

	// 2) BFS to set fail links and propagate outputs
	queue := make([]int32, 0, len(nodes))
	for c := 0; c < 256; c++ {
		if child := nodes[0].next[c]; child != 0 {
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < 256; c++ {
			s := nodes[r].next[c]
			if s == 0 {
				continue
			}
			queue = append(queue, s)
			f := nodes[r].fail
			for f > 0 && nodes[f].next[c] == 0 {
				f = nodes[f].fail
			}
			if nodes[f].next[c] != 0 {
				f = nodes[f].next[c]
			}
			nodes[s].fail = f
			if len(nodes[f].out) > 0 {
				nodes[s].out = append(nodes[s].out, nodes[f].out...)
			}
		}
	}
	return nodes
}

// upper folds ASCII letters so lower-case subjects hit upper-case patterns.
var upper = func() (t [256]byte) {
	for i := range t {
		t[i] = byte(i)
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = byte(c - 'a' + 'A')
	}
	return t
}()

// scanAC runs the automaton over seq and calls fn with the end index and
// pattern index of every hit.
func scanAC(seq []byte, nodes []node, fn func(end, pat int)) {
	state := int32(0)
	for i := 0; i < len(seq); i++ {
		b := upper[seq[i]]
		for state > 0 && nodes[state].next[b] == 0 {
			state = nodes[state].fail
		}
		if next := nodes[state].next[b]; next != 0 {
			state = next
		}
		for _, idx := range nodes[state].out {
			fn(i, idx)
		}
	}
}
