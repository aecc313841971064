package fitnesstree

import (
	"fmt"
	"runtime"
	"sync"
)

// PredictBatch runs Predict on every sample concurrently.
//
// The labels are in the same order as the samples.
// If any sample is invalid, the error for the first such
// sample is returned.
func PredictBatch(samples [][]float64) ([]int, error) {
	return predictBatch(Predict, samples)
}

// PredictBatch is like the package-level PredictBatch,
// but for the model's tree.
func (m *Model) PredictBatch(samples [][]float64) ([]int, error) {
	return predictBatch(m.Predict, samples)
}

func predictBatch(f func([]float64) (int, error), samples [][]float64) ([]int, error) {
	labels := make([]int, len(samples))
	errs := make([]error, len(samples))

	indices := make(chan int, len(samples))
	for i := range samples {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				labels[idx], errs[idx] = f(samples[idx])
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return labels, nil
}
