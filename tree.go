package fitnesstree

import (
	"errors"
	"fmt"

	"github.com/unixpickle/essentials"
)

// Tree is a node in a decision tree.
//
// A Tree is either a leaf node or a branching node.
// Leaf nodes carry a class label.
// Branching nodes provide two children and a feature to
// decide which branch to take.
type Tree struct {
	Leaf bool

	// Information for leaf nodes.
	Class int

	// Information for branching nodes.
	Feature   int
	Threshold float64
	LessEqual *Tree `json:",omitempty"`
	Greater   *Tree `json:",omitempty"`
}

// Find returns the class for the feature vector.
//
// The vector must have at least t.MinFeatures()
// components.
func (t *Tree) Find(features []float64) int {
	if t.Leaf {
		return t.Class
	}
	if features[t.Feature] <= t.Threshold {
		return t.LessEqual.Find(features)
	} else {
		return t.Greater.Find(features)
	}
}

// MinFeatures returns the length a feature vector needs
// for Find to be safe.
func (t *Tree) MinFeatures() int {
	if t.Leaf {
		return 0
	}
	res := essentials.MaxInt(t.LessEqual.MinFeatures(), t.Greater.MinFeatures())
	return essentials.MaxInt(res, t.Feature+1)
}

// Depth returns the number of splits on the longest path
// from the root to a leaf.
func (t *Tree) Depth() int {
	if t.Leaf {
		return 0
	}
	return 1 + essentials.MaxInt(t.LessEqual.Depth(), t.Greater.Depth())
}

// Validate checks that the tree is well-formed.
func (t *Tree) Validate() error {
	if t == nil {
		return errors.New("missing node")
	}
	if t.Leaf {
		if t.LessEqual != nil || t.Greater != nil {
			return errors.New("leaf has children")
		}
		return nil
	}
	if t.Feature < 0 {
		return fmt.Errorf("negative feature index %d", t.Feature)
	}
	if err := t.LessEqual.Validate(); err != nil {
		return essentials.AddCtx("less-equal branch", err)
	}
	return essentials.AddCtx("greater branch", t.Greater.Validate())
}

// Model evaluates an arbitrary decision tree with the same
// input checks as Predict.
type Model struct {
	Tree *Tree
}

// Predict returns the class for the feature vector.
func (m *Model) Predict(features []float64) (int, error) {
	if n := m.Tree.MinFeatures(); len(features) < n {
		return 0, &InvalidInputError{Length: len(features), Required: n}
	}
	return m.Tree.Find(features), nil
}
