package knapsack_test

import (
	"testing"

	"github.com/katalvlaran/algotrace/knapsack"
)

var benchItems = []knapsack.Item{
	{Value: 10, Weight: 2}, {Value: 5, Weight: 3}, {Value: 15, Weight: 5},
	{Value: 7, Weight: 1}, {Value: 6, Weight: 4}, {Value: 18, Weight: 7},
	{Value: 3, Weight: 1}, {Value: 9, Weight: 3},
}

func BenchmarkSolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.Solve(benchItems, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreedy(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.Greedy(benchItems, 20); err != nil {
			b.Fatal(err)
		}
	}
}
