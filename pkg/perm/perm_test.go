package perm

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/routeperm/pkg/errors"
)

func TestSeq(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{-1, []int{}},
		{0, []int{}},
		{1, []int{0}},
		{4, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		if got := Seq(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("Seq(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestFactorial(t *testing.T) {
	want := []int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}
	for n, w := range want {
		if got := Factorial(n); got != w {
			t.Errorf("Factorial(%d) = %d, want %d", n, got, w)
		}
	}
	if Factorial(-3) != 1 {
		t.Error("Factorial of a negative number should be 1")
	}
}

// allPermutations builds the expected permutation set independently of Heap's
// algorithm by recursive insertion.
func allPermutations(items []string) [][]string {
	if len(items) == 0 {
		return [][]string{{}}
	}
	var out [][]string
	for _, rest := range allPermutations(items[1:]) {
		for pos := 0; pos <= len(rest); pos++ {
			p := slices.Insert(slices.Clone(rest), pos, items[0])
			out = append(out, p)
		}
	}
	return out
}

func canonical(perms [][]string) map[string]int {
	set := make(map[string]int, len(perms))
	for _, p := range perms {
		set[fmt.Sprint(p)]++
	}
	return set
}

func TestHeapYieldsEveryPermutationOnce(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	for n := 0; n <= len(labels); n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			items := labels[:n]
			h, err := NewHeap(items, 0)
			if err != nil {
				t.Fatalf("NewHeap: %v", err)
			}

			var got [][]string
			for _, p := range h.All() {
				if len(p) != n {
					t.Fatalf("permutation %v has length %d, want %d", p, len(p), n)
				}
				got = append(got, p)
			}

			if len(got) != Factorial(n) {
				t.Fatalf("got %d permutations, want %d", len(got), Factorial(n))
			}

			gotSet := canonical(got)
			wantSet := canonical(allPermutations(items))
			if len(gotSet) != len(wantSet) {
				t.Fatalf("got %d distinct permutations, want %d", len(gotSet), len(wantSet))
			}
			for k, c := range gotSet {
				if c != 1 {
					t.Errorf("permutation %s emitted %d times", k, c)
				}
				if wantSet[k] != 1 {
					t.Errorf("unexpected permutation %s", k)
				}
			}
		})
	}
}

func TestHeapMatchesGenerateOrder(t *testing.T) {
	for n := 0; n <= 5; n++ {
		h, err := NewHeap(Seq(n), 0)
		if err != nil {
			t.Fatalf("NewHeap(%d): %v", n, err)
		}
		want := Generate(n, 0)
		i := 0
		for _, p := range h.All() {
			if !slices.Equal(p, want[i]) {
				t.Fatalf("n=%d permutation %d = %v, want %v", n, i, p, want[i])
			}
			i++
		}
		if i != len(want) {
			t.Fatalf("n=%d got %d permutations, want %d", n, i, len(want))
		}
	}
}

func TestHeapSnapshotsAreIndependent(t *testing.T) {
	h, _ := NewHeap([]int{1, 2, 3}, 0)

	first, _ := h.Next()
	saved := slices.Clone(first)
	second, _ := h.Next()

	if !slices.Equal(first, saved) {
		t.Errorf("first snapshot changed after advancing: %v, want %v", first, saved)
	}

	first[0] = 99
	third, _ := h.Next()
	if slices.Contains(second, 99) || slices.Contains(third, 99) {
		t.Error("mutating a snapshot leaked into the generator")
	}
}

func TestHeapDoesNotAliasInput(t *testing.T) {
	items := []string{"OH", "TX", "NE"}
	h, _ := NewHeap(items, 0)
	for range h.All() {
	}
	if !slices.Equal(items, []string{"OH", "TX", "NE"}) {
		t.Errorf("input mutated: %v", items)
	}
}

func TestHeapIsNotRestartable(t *testing.T) {
	h, _ := NewHeap([]int{1, 2}, 0)
	count := 0
	for range h.All() {
		count++
	}
	if count != 2 {
		t.Fatalf("first pass yielded %d, want 2", count)
	}
	for range h.All() {
		t.Fatal("exhausted generator yielded again")
	}
	if _, ok := h.Next(); ok {
		t.Fatal("Next on exhausted generator returned true")
	}
	if h.Emitted() != 2 {
		t.Errorf("Emitted() = %d, want 2", h.Emitted())
	}
}

func TestHeapBreakResumes(t *testing.T) {
	h, _ := NewHeap([]int{1, 2, 3}, 0)
	for i := range h.All() {
		if i == 2 {
			break
		}
	}
	rest := 0
	for range h.All() {
		rest++
	}
	if rest != 4 {
		t.Errorf("resumed iteration yielded %d, want 4", rest)
	}
}

func TestHeapEmptyInput(t *testing.T) {
	h, err := NewHeap([]string{}, 0)
	if err != nil {
		t.Fatalf("NewHeap: %v", err)
	}
	if h.Total() != 1 {
		t.Errorf("Total() = %d, want 1", h.Total())
	}
	p, ok := h.Next()
	if !ok || len(p) != 0 {
		t.Fatalf("Next() = %v, %v; want empty ordering", p, ok)
	}
	if _, ok := h.Next(); ok {
		t.Fatal("empty input should yield exactly one ordering")
	}
}

func TestNewHeapLimits(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		maxItems int
		wantErr  bool
	}{
		{"default bound ok", DefaultMaxItems, 0, false},
		{"default bound exceeded", DefaultMaxItems + 1, 0, true},
		{"custom bound ok", 3, 3, false},
		{"custom bound exceeded", 4, 3, true},
		{"raised bound", 11, MaxItems, false},
		{"bound above maximum", 2, MaxItems + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHeap(make([]int, tt.n), tt.maxItems)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewHeap(%d items, %d) error = %v, wantErr %v", tt.n, tt.maxItems, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestGenerateLimit(t *testing.T) {
	if got := len(Generate(4, 0)); got != 24 {
		t.Errorf("Generate(4, 0) returned %d, want 24", got)
	}
	if got := len(Generate(4, 7)); got != 7 {
		t.Errorf("Generate(4, 7) returned %d, want 7", got)
	}
	if got := len(Generate(2, 100)); got != 2 {
		t.Errorf("Generate(2, 100) returned %d, want 2", got)
	}
}

func TestGenerateLargeN(t *testing.T) {
	got := Generate(20, 3)
	if len(got) != 3 || cap(got) != 3 {
		t.Fatalf("Generate(20, 3): len %d cap %d, want 3 and 3", len(got), cap(got))
	}
	if !slices.Equal(got[0], Seq(20)) {
		t.Errorf("first ordering = %v, want identity", got[0])
	}
}
