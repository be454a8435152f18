package joint_test

import (
	"fmt"

	"github.com/katalvlaran/einsolid/joint"
)

// ExampleSequence sweeps three quanta between two 2-oscillator solids.
func ExampleSequence() {
	seq, err := joint.Sequence(3, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq)
	// Output: [4 6 6 4]
}

// ExampleBuild shows the derived views used by the chart.
func ExampleBuild() {
	d, err := joint.Build(6, 3, 3, joint.WithMemo(), joint.WithVerify())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	qA, omega := d.Peak()
	fmt.Println("omega:", d.Omega)
	fmt.Println("total:", d.Total())
	fmt.Printf("peak: q_A=%d Ω=%v\n", qA, omega)
	// Output:
	// omega: [28 63 90 100 90 63 28]
	// total: 462
	// peak: q_A=3 Ω=100
}
