// Package fitnesstree provides the frozen decision tree used
// by the fitness planner to pick a workout category.
package fitnesstree

import (
	"errors"
	"fmt"
)

// NumFeatures is the number of features the frozen model
// reads from a feature vector.
const NumFeatures = 4

// NumClasses is the number of class labels the frozen
// model can produce.
const NumClasses = 6

// Split thresholds of the frozen model.
//
// The feature-2 thresholds are float32 constants widened
// to float64.
const (
	selectorThreshold = 0.5
	lowThreshold      = 29.5
	highThreshold     = 49.5
	restThreshold     = 24.949999809265137
	activeThreshold   = 24.850000381469727
	selectorFeature   = 3
	primaryFeature    = 0
	secondaryFeature  = 2
)

// ErrInvalidInput is matched by every error caused by a
// feature vector the model cannot evaluate.
var ErrInvalidInput = errors.New("invalid input")

// An InvalidInputError is returned when a feature vector
// is too short.
type InvalidInputError struct {
	Length   int
	Required int
}

// Error returns a description of the length mismatch.
func (i *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: got %d features but need at least %d",
		i.Length, i.Required)
}

// Is makes errors.Is(err, ErrInvalidInput) true.
func (i *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Predict runs the frozen decision tree on a feature
// vector and returns a class label in [0, NumClasses).
//
// Every split is inclusive, so a feature equal to its
// threshold takes the first branch.
// Features past index 3 are ignored.
func Predict(features []float64) (int, error) {
	if len(features) < NumFeatures {
		return 0, &InvalidInputError{Length: len(features), Required: NumFeatures}
	}
	return predict(features), nil
}

func predict(x []float64) int {
	if x[selectorFeature] <= selectorThreshold {
		if x[primaryFeature] <= lowThreshold {
			if x[secondaryFeature] <= restThreshold {
				return 2
			}
			return 1
		} else if x[primaryFeature] <= highThreshold {
			return 1
		}
		return 0
	}
	if x[primaryFeature] <= lowThreshold {
		if x[secondaryFeature] <= activeThreshold {
			return 5
		}
		return 4
	} else if x[primaryFeature] <= highThreshold {
		return 4
	}
	return 3
}

// ModelV1 creates a copy of the frozen model as a Tree.
//
// The result always agrees with Predict.
func ModelV1() *Tree {
	branch := func(feature int, threshold float64, le, gt *Tree) *Tree {
		return &Tree{
			Feature:   feature,
			Threshold: threshold,
			LessEqual: le,
			Greater:   gt,
		}
	}
	leaf := func(class int) *Tree {
		return &Tree{Leaf: true, Class: class}
	}
	return branch(selectorFeature, selectorThreshold,
		branch(primaryFeature, lowThreshold,
			branch(secondaryFeature, restThreshold, leaf(2), leaf(1)),
			branch(primaryFeature, highThreshold, leaf(1), leaf(0))),
		branch(primaryFeature, lowThreshold,
			branch(secondaryFeature, activeThreshold, leaf(5), leaf(4)),
			branch(primaryFeature, highThreshold, leaf(4), leaf(3))))
}

// DecisionTree is a stateless handle on the frozen model.
//
// Its zero value is ready to use.
type DecisionTree struct{}

// Predict is equivalent to the package-level Predict.
func (DecisionTree) Predict(features []float64) (int, error) {
	return Predict(features)
}
