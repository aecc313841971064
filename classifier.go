package fitnesstree

import "github.com/unixpickle/weakai/idtrees"

// A Classifier produces a distribution over class labels.
//
// Attributes in the sample are integers corresponding to
// feature indices.
// Attribute values are float64 values corresponding to
// numerical feature values.
//
// Classes in the result are integers corresponding to
// class labels.
type Classifier interface {
	Classify(sample idtrees.AttrMap) map[idtrees.Class]float64
}

// Classify returns a distribution which puts all of its
// mass on the predicted class.
//
// If the sample lacks one of the features or has a
// non-numerical value, an empty distribution is returned.
func (d DecisionTree) Classify(sample idtrees.AttrMap) map[idtrees.Class]float64 {
	return classifyWith(Predict, NumFeatures, sample)
}

// Classify is like DecisionTree.Classify, but for the
// model's tree.
func (m *Model) Classify(sample idtrees.AttrMap) map[idtrees.Class]float64 {
	return classifyWith(m.Predict, m.Tree.MinFeatures(), sample)
}

func classifyWith(f func([]float64) (int, error), numFeatures int,
	sample idtrees.AttrMap) map[idtrees.Class]float64 {
	res := map[idtrees.Class]float64{}
	if sample == nil {
		return res
	}
	features, ok := sampleFeatures(sample, numFeatures)
	if !ok {
		return res
	}
	class, err := f(features)
	if err != nil {
		return res
	}
	res[class] = 1
	return res
}

func sampleFeatures(sample idtrees.AttrMap, numFeatures int) ([]float64, bool) {
	res := make([]float64, numFeatures)
	for i := range res {
		switch val := sample.Attr(i).(type) {
		case float64:
			res[i] = val
		case float32:
			res[i] = float64(val)
		case int:
			res[i] = float64(val)
		default:
			return nil, false
		}
	}
	return res, true
}

// FeatureMap is an idtrees.AttrMap backed by a feature
// vector.
type FeatureMap []float64

// Attr returns the feature at the integer index k, or nil
// if k is not a valid index.
func (f FeatureMap) Attr(k idtrees.Attr) idtrees.Val {
	idx, ok := k.(int)
	if !ok || idx < 0 || idx >= len(f) {
		return nil
	}
	return f[idx]
}
