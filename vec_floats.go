package fitnesstree

import (
	"fmt"

	"github.com/unixpickle/anyvec"
)

// PredictVec is like Predict, but for a float32 or float64
// vector.
func (d DecisionTree) PredictVec(vec anyvec.Vector) (int, error) {
	features, err := vecToFloats(vec)
	if err != nil {
		return 0, err
	}
	return Predict(features)
}

// Float32Features widens a float32 feature vector, as
// produced on the device, to float64.
//
// Widening is exact, so the labels are the same as on the
// device.
func Float32Features(features []float32) []float64 {
	res := make([]float64, len(features))
	for i, x := range features {
		res[i] = float64(x)
	}
	return res
}

func vecToFloats(vec anyvec.Vector) ([]float64, error) {
	switch data := vec.Data().(type) {
	case []float64:
		return data, nil
	case []float32:
		return Float32Features(data), nil
	default:
		return nil, fmt.Errorf("%w: unsupported numeric type %T", ErrInvalidInput, data)
	}
}
