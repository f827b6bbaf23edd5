// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kngen/builder"
)

func ExampleComplete() {
	m, _ := builder.Complete(3)
	fmt.Println(m)

	_, err := builder.Complete(-1)
	fmt.Println(errors.Is(err, builder.ErrInvalidInput))

	// Output:
	// [[0 1 1]
	//  [1 0 1]
	//  [1 1 0]]
	// true
}
