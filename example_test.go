package ltv_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-ltv"
)

func ExampleConvolve() {
	// Impulse response [1 1] at each of three steps.
	ir := mat.NewDense(2, 3, []float64{
		1, 1, 1,
		1, 1, 1,
	})

	y, err := ltv.Convolve([]float64{1, 2, 3}, ir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(y)
	// Output: [1 3 5 3]
}

func ExampleConvolveColumns() {
	y, err := ltv.ConvolveColumns([]float64{1, 2, 3}, [][]float64{
		{1, 0}, // pass-through
		{0, 1}, // one-sample delay
		{1, 1}, // two-tap sum
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(y)
	// Output: [1 0 5 3]
}

func ExampleOperator() {
	ir := mat.NewDense(2, 3, []float64{
		1, 1, 1,
		1, 1, 1,
	})

	t, err := ltv.Operator(ir, 3)
	if err != nil {
		log.Fatal(err)
	}
	rows, _ := t.Dims()
	for i := range rows {
		fmt.Println(mat.Row(nil, i, t))
	}
	// Output:
	// [1 0 0 0]
	// [1 1 0 0]
	// [0 1 1 0]
	// [0 0 1 0]
}
