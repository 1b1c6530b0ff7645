package huffman

import (
	"github.com/mrjoshuak/go-codec31/internal/bitstream"
	"github.com/pkg/errors"
)

// NumSymbols is the alphabet size. Every tree has exactly this many leaves.
const NumSymbols = 256

// maxNodes is the node count of a full binary tree with NumSymbols leaves.
const maxNodes = 2*NumSymbols - 1

// none marks an absent child; a node with no children is a leaf.
const none int32 = -1

// Frequencies counts the occurrences of each byte value.
type Frequencies [NumSymbols]uint64

// Count builds the frequency table of src.
func Count(src []byte) Frequencies {
	var freq Frequencies
	for _, b := range src {
		freq[b]++
	}
	return freq
}

// node is an arena entry. Internal nodes own exactly two children.
type node struct {
	weight uint64
	symbol byte
	left   int32
	right  int32
}

func (n *node) isLeaf() bool {
	return n.left == none
}

// Tree is a Huffman tree stored as an arena of nodes addressed by index.
type Tree struct {
	nodes []node
	root  int32
}

// Build constructs the tree for freq. All 256 symbols take part, so
// symbols with zero frequency still get a code and the shape depends
// only on freq.
//
// The two lightest nodes are merged until one remains. Each minimum is
// found by a linear scan over the working list that keeps the first of
// equal weights; the merged node is appended to the end of the list
// with the first minimum as its left child.
func Build(freq *Frequencies) *Tree {
	t := &Tree{nodes: make([]node, 0, maxNodes)}
	work := make([]int32, 0, NumSymbols)
	for sym, f := range freq {
		t.nodes = append(t.nodes, node{weight: f, symbol: byte(sym), left: none, right: none})
		work = append(work, int32(sym))
	}

	for len(work) > 1 {
		var a, b int32
		a, work = t.popMin(work)
		b, work = t.popMin(work)
		t.nodes = append(t.nodes, node{
			weight: t.nodes[a].weight + t.nodes[b].weight,
			left:   a,
			right:  b,
		})
		work = append(work, int32(len(t.nodes)-1))
	}
	t.root = work[0]
	return t
}

// popMin removes the first lightest node from work, preserving the
// order of the remaining entries.
func (t *Tree) popMin(work []int32) (int32, []int32) {
	minPos := 0
	for i := range work {
		if t.nodes[work[i]].weight < t.nodes[work[minPos]].weight {
			minPos = i
		}
	}
	n := work[minPos]
	return n, append(work[:minPos], work[minPos+1:]...)
}

// Weight returns the total weight of the tree.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Code is a root-to-leaf path: 0 for a left edge, 1 for a right edge.
type Code []uint8

// Codes derives the code of every symbol by a depth-first walk.
func (t *Tree) Codes() [NumSymbols]Code {
	var codes [NumSymbols]Code
	var walk func(n int32, path Code)
	walk = func(n int32, path Code) {
		nd := &t.nodes[n]
		if nd.isLeaf() {
			code := make(Code, len(path))
			copy(code, path)
			codes[nd.symbol] = code
			return
		}
		walk(nd.left, append(path, 0))
		walk(nd.right, append(path, 1))
	}
	walk(t.root, make(Code, 0, 32))
	return codes
}

// WriteTo serialises the tree shape to w in pre-order (1 for a leaf,
// 0 for an internal node followed by its children) and appends the leaf
// symbols, in the same order, to leaves.
func (t *Tree) WriteTo(w *bitstream.Writer, leaves []byte) []byte {
	var walk func(n int32)
	walk = func(n int32) {
		nd := &t.nodes[n]
		if nd.isLeaf() {
			w.WriteBit(1)
			leaves = append(leaves, nd.symbol)
			return
		}
		w.WriteBit(0)
		walk(nd.left)
		walk(nd.right)
	}
	walk(t.root)
	return leaves
}

// ReadTree rebuilds a tree written by WriteTo. Leaf symbols are taken
// from leaves in order; the tree must use exactly NumSymbols of them.
func ReadTree(r *bitstream.Reader, leaves []byte) (*Tree, error) {
	if len(leaves) != NumSymbols {
		return nil, errors.Wrapf(ErrMalformedTree, "%d leaf symbols", len(leaves))
	}
	t := &Tree{nodes: make([]node, 0, maxNodes)}
	used := 0

	var read func() (int32, error)
	read = func() (int32, error) {
		if len(t.nodes) == maxNodes {
			return none, errors.Wrap(ErrMalformedTree, "too many nodes")
		}
		bit, err := r.ReadBit()
		if err != nil {
			return none, errors.Wrap(ErrTruncated, "tree shape")
		}
		idx := int32(len(t.nodes))
		if bit == 1 {
			if used == NumSymbols {
				return none, errors.Wrap(ErrMalformedTree, "too many leaves")
			}
			t.nodes = append(t.nodes, node{symbol: leaves[used], left: none, right: none})
			used++
			return idx, nil
		}

		t.nodes = append(t.nodes, node{left: none, right: none})
		left, err := read()
		if err != nil {
			return none, err
		}
		right, err := read()
		if err != nil {
			return none, err
		}
		t.nodes[idx].left = left
		t.nodes[idx].right = right
		return idx, nil
	}

	root, err := read()
	if err != nil {
		return nil, err
	}
	if used != NumSymbols {
		return nil, errors.Wrapf(ErrMalformedTree, "%d leaves, want %d", used, NumSymbols)
	}
	t.root = root
	return t, nil
}

// next follows one edge from n.
func (t *Tree) next(n int32, bit int) int32 {
	if bit == 0 {
		return t.nodes[n].left
	}
	return t.nodes[n].right
}
