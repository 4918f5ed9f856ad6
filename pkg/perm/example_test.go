package perm_test

import (
	"fmt"

	"github.com/matzehuels/routeperm/pkg/perm"
)

func ExampleGenerate() {
	// Generate all permutations of 3 elements
	perms := perm.Generate(3, -1)
	fmt.Println("All permutations of [0,1,2]:")
	for _, p := range perms {
		fmt.Println(p)
	}
	// Output:
	// All permutations of [0,1,2]:
	// [0 1 2]
	// [1 0 2]
	// [2 0 1]
	// [0 2 1]
	// [1 2 0]
	// [2 1 0]
}

func ExampleGenerate_limited() {
	// Generate only the first 5 permutations of 10 elements
	perms := perm.Generate(10, 5)
	fmt.Println("Count:", len(perms))
	// Output:
	// Count: 5
}

func ExampleFactorial() {
	fmt.Println("4! =", perm.Factorial(4))
	fmt.Println("5! =", perm.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}

func ExampleHeap() {
	h, err := perm.NewHeap([]string{"OH", "TX", "NE"}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, p := range h.All() {
		fmt.Println(i, p)
	}
	// Output:
	// 1 [OH TX NE]
	// 2 [TX OH NE]
	// 3 [NE OH TX]
	// 4 [OH NE TX]
	// 5 [TX NE OH]
	// 6 [NE TX OH]
}

func ExampleNewHeap_tooLarge() {
	_, err := perm.NewHeap(make([]string, 11), 0)
	fmt.Println(err)
	// Output:
	// INVALID_INPUT: cannot permute 11 items: limit is 10 (10! orderings)
}
