package trainer

import "math/rand"

// splitSeed fixes the train/test shuffle so repeated training runs on the
// same data produce the same model file.
const splitSeed = 42

// trainTestSplit shuffles row indices with a fixed seed and holds out
// testFrac of them. Tiny datasets may end up with an empty test set; the
// caller then evaluates on the training rows.
func trainTestSplit(x [][]float64, y []float64, testFrac float64) (trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(splitSeed))
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(float64(n) * testFrac)
	for k, i := range idx {
		if k < nTest {
			testX = append(testX, x[i])
			testY = append(testY, y[i])
		} else {
			trainX = append(trainX, x[i])
			trainY = append(trainY, y[i])
		}
	}
	return trainX, trainY, testX, testY
}
