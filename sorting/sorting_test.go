package sorting_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/sorting"
)

type record struct {
	key int
	seq int
}

func byKey(r record) int { return r.key }

type sorter func([]record, func(record) int) []record

var sorters = map[string]sorter{
	"merge": func(s []record, k func(record) int) []record { return sorting.MergeSort(s, k) },
	"quick": func(s []record, k func(record) int) []record { return sorting.QuickSort(s, k) },
}

func records(keys ...int) []record {
	out := make([]record, len(keys))
	for i, k := range keys {
		out[i] = record{key: k, seq: i}
	}
	return out
}

func TestSort_Scenario(t *testing.T) {
	in := []int{3, 1, 2, 1}
	assert.Equal(t, []int{1, 1, 2, 3}, sorting.MergeSort(in, sorting.Identity[int]))
	assert.Equal(t, []int{1, 1, 2, 3}, sorting.QuickSort(in, sorting.Identity[int]))
	assert.Equal(t, []int{3, 1, 2, 1}, in, "input must not be modified")
}

func TestSort_Shapes(t *testing.T) {
	shapes := map[string][]int{
		"empty":   {},
		"single":  {7},
		"sorted":  {1, 2, 3, 4, 5, 6},
		"reverse": {6, 5, 4, 3, 2, 1},
		"equal":   {4, 4, 4, 4, 4},
		"mixed":   {5, -1, 3, 3, 0, 9, -1},
	}
	for name, sortFn := range sorters {
		for shape, keys := range shapes {
			t.Run(name+"/"+shape, func(t *testing.T) {
				got := sortFn(records(keys...), byKey)
				require.Len(t, got, len(keys))
				assertOrdered(t, got)
				assert.ElementsMatch(t, records(keys...), got)
			})
		}
	}
}

func TestSort_NilAndEmpty(t *testing.T) {
	for name, sortFn := range sorters {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, sortFn(nil, byKey))

			got := sortFn([]record{}, byKey)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 200; round++ {
		keys := make([]int, rng.Intn(40))
		for i := range keys {
			keys[i] = rng.Intn(10)
		}
		in := records(keys...)
		want := make([]record, len(in))
		copy(want, in)
		sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

		require.Equal(t, want, sorting.MergeSort(in, byKey), "round %d", round)

		q := sorting.QuickSort(in, byKey)
		assertOrdered(t, q)
		require.ElementsMatch(t, in, q)
	}
}

func TestMergeSort_StableAndIdempotent(t *testing.T) {
	in := records(2, 1, 2, 1, 0, 2)
	once := sorting.MergeSort(in, byKey)
	assert.Equal(t, []record{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 5}}, once)
	assert.Equal(t, once, sorting.MergeSort(once, byKey))
}

func TestSort_FloatNaN(t *testing.T) {
	in := []float64{2, math.NaN(), 1}
	for _, got := range [][]float64{
		sorting.MergeSort(in, sorting.Identity[float64]),
		sorting.QuickSort(in, sorting.Identity[float64]),
	} {
		require.Len(t, got, 3)
		assert.True(t, math.IsNaN(got[0]))
		assert.Equal(t, []float64{1, 2}, got[1:])
	}
}

func TestMergeSort_Trace(t *testing.T) {
	var steps []sorting.Step[int]
	sorting.MergeSort([]int{3, 1, 2}, sorting.Identity[int], sorting.WithTrace(func(s sorting.Step[int]) {
		steps = append(steps, s)
	}))
	require.Len(t, steps, 4)
	assert.Equal(t, sorting.Step[int]{Kind: sorting.StepSplit, Level: 0, Left: []int{3}, Right: []int{1, 2}}, steps[0])
	assert.Equal(t, sorting.Step[int]{Kind: sorting.StepSplit, Level: 1, Left: []int{1}, Right: []int{2}}, steps[1])
	assert.Equal(t, sorting.StepMerge, steps[2].Kind)
	assert.Equal(t, []int{1, 2}, steps[2].Result)
	assert.Equal(t, sorting.Step[int]{Kind: sorting.StepMerge, Level: 0, Left: []int{3}, Right: []int{1, 2}, Result: []int{1, 2, 3}}, steps[3])
}

func TestQuickSort_Trace(t *testing.T) {
	var steps []sorting.Step[int]
	sorting.QuickSort([]int{3, 1, 2, 5, 4}, sorting.Identity[int], sorting.WithTrace(func(s sorting.Step[int]) {
		steps = append(steps, s)
	}))
	require.NotEmpty(t, steps)
	root := steps[0]
	assert.Equal(t, sorting.StepPartition, root.Kind)
	assert.Equal(t, sorting.SideRoot, root.Side)
	assert.Equal(t, []int{1}, root.Left)
	assert.Equal(t, []int{2}, root.Middle)
	assert.Equal(t, []int{3, 5, 4}, root.Right)

	last := steps[len(steps)-1]
	assert.Equal(t, sorting.StepCombine, last.Kind)
	assert.Equal(t, 0, last.Level)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, last.Result)
}

func assertOrdered(t *testing.T, rs []record) {
	t.Helper()
	for i := 1; i < len(rs); i++ {
		require.LessOrEqual(t, rs[i-1].key, rs[i].key, "index %d", i)
	}
}
