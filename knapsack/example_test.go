package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/knapsack"
)

// ExampleSolve contrasts the DP optimum with the greedy baseline.
func ExampleSolve() {
	items := []knapsack.Item{{Value: 60, Weight: 10}, {Value: 100, Weight: 20}, {Value: 120, Weight: 30}}

	dp, err := knapsack.Solve(items, 50)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	greedy, err := knapsack.Greedy(items, 50)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dp.Last().Description)
	fmt.Println(greedy.Last().Description)
	// Output:
	// optimal value 220 with weight 50/50 using item indices [1 2]
	// greedy baseline total value 160 with weight 30/50 using item indices [0 1] (not guaranteed optimal)
}
