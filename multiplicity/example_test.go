package multiplicity_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/einsolid/multiplicity"
)

// ExampleMultiplicity counts the arrangements of 2 quanta over 3 oscillators.
func ExampleMultiplicity() {
	omega, err := multiplicity.Multiplicity(2, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(omega)
	// Output: 6
}

// ExampleMultiplicity_invalid shows the domain check.
func ExampleMultiplicity_invalid() {
	_, err := multiplicity.Multiplicity(-1, 3)
	fmt.Println(errors.Is(err, multiplicity.ErrInvalidArgument))
	fmt.Println(err)
	// Output:
	// true
	// Multiplicity(q=-1, n=3): multiplicity: invalid argument
}

// ExampleTable walks q = 0..4 for a solid with three oscillators.
func ExampleTable() {
	tbl, err := multiplicity.NewTable(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for q := 0; q <= 4; q++ {
		omega, _ := tbl.At(q)
		fmt.Printf("Ω(%d,3)=%v\n", q, omega)
	}
	// Output:
	// Ω(0,3)=1
	// Ω(1,3)=3
	// Ω(2,3)=6
	// Ω(3,3)=10
	// Ω(4,3)=15
}
