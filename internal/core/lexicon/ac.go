package lexicon

// automaton is a byte-level Aho-Corasick matcher over lower-cased UTF-8.
// Each node carries a dense 256-way transition row so the scan loop never
// touches a map

const noEdge int32 = -1

type acNode struct {
	next   [256]int32
	fail   int32
	output []int // phrase ids ending here, including those inherited via fail
}

type automaton struct {
	nodes []acNode
}

func newNode() acNode {
	var n acNode
	for i := range n.next {
		n.next[i] = noEdge
	}
	return n
}

func newAutomaton() *automaton {
	return &automaton{nodes: []acNode{newNode()}}
}

// add inserts pat under id; empty patterns are ignored
func (a *automaton) add(pat []byte, id int) {
	if len(pat) == 0 {
		return
	}
	state := int32(0)
	for _, b := range pat {
		nxt := a.nodes[state].next[b]
		if nxt == noEdge {
			nxt = int32(len(a.nodes))
			a.nodes[state].next[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// build computes failure links breadth-first and merges outputs along them
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].next[b]; s != noEdge {
			a.nodes[s].fail = 0
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := range 256 {
			s := a.nodes[r].next[b]
			if s == noEdge {
				continue
			}
			queue = append(queue, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].next[b] == noEdge {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].next[b]; nxt != noEdge && nxt != s {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// scan calls fn(id) for every match ending in text; returning false stops the scan
func (a *automaton) scan(text []byte, fn func(id int) bool) {
	state := int32(0)
	for _, b := range text {
		for state != 0 && a.nodes[state].next[b] == noEdge {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].next[b]; nxt != noEdge {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			if !fn(id) {
				return
			}
		}
	}
}
