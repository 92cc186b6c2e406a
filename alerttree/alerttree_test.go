package alerttree_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/alerttree"
)

// escalation:
//
//	       A
//	    /  |  \
//	   B   C   G
//	  / \  |
//	 D   E F
const escalationYAML = `
root: A
children:
  - node: B
    children:
      - node: D
      - node: E
  - node: C
    children:
      - node: F
  - node: G
`

func escalation(t *testing.T) alerttree.Node {
	t.Helper()
	root, err := alerttree.Decode(strings.NewReader(escalationYAML))
	require.NoError(t, err)
	return root
}

func TestWalk_Orders(t *testing.T) {
	root := escalation(t)
	cases := map[alerttree.Order][]string{
		// first child subtree, node, then every other child subtree
		alerttree.InOrder:      {"D", "B", "E", "A", "F", "C", "G"},
		alerttree.PreOrder:     {"A", "B", "D", "E", "C", "F", "G"},
		alerttree.PostOrder:    {"D", "E", "B", "F", "C", "G", "A"},
		alerttree.BreadthFirst: {"A", "B", "C", "G", "D", "E", "F"},
	}
	for order, want := range cases {
		t.Run(string(order), func(t *testing.T) {
			got, err := alerttree.Walk(root, order)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestWalk_Leaf(t *testing.T) {
	for _, order := range alerttree.Orders {
		got, err := alerttree.Walk(alerttree.Node{Name: "solo"}, order)
		require.NoError(t, err)
		assert.Equal(t, []string{"solo"}, got, order)
	}
}

func TestWalk_InOrderSingleChildChain(t *testing.T) {
	root := alerttree.Node{Name: "a", Children: []alerttree.Node{
		{Name: "b", Children: []alerttree.Node{{Name: "c"}}},
	}}
	got, err := alerttree.Walk(root, alerttree.InOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestAnalyze(t *testing.T) {
	tr, err := alerttree.Analyze(escalation(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "E", "A", "F", "C", "G"}, tr.InOrder)
	assert.Equal(t, []string{"A", "B", "D", "E", "C", "F", "G"}, tr.PreOrder)
	assert.Equal(t, []string{"D", "E", "B", "F", "C", "G", "A"}, tr.PostOrder)
	assert.Equal(t, []string{"A", "B", "C", "G", "D", "E", "F"}, tr.BFS)
}

func TestWalk_MaxDepth(t *testing.T) {
	root := escalation(t)
	cases := map[alerttree.Order][]string{
		alerttree.InOrder:      {"B", "A", "C", "G"},
		alerttree.PreOrder:     {"A", "B", "C", "G"},
		alerttree.PostOrder:    {"B", "C", "G", "A"},
		alerttree.BreadthFirst: {"A", "B", "C", "G"},
	}
	for order, want := range cases {
		got, err := alerttree.Walk(root, order, alerttree.WithMaxDepth(1))
		require.NoError(t, err)
		assert.Equal(t, want, got, order)
	}

	got, err := alerttree.Walk(root, alerttree.PreOrder, alerttree.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, got, 7)

	_, err = alerttree.Walk(root, alerttree.PreOrder, alerttree.WithMaxDepth(-2))
	assert.ErrorIs(t, err, alerttree.ErrOptionViolation)
}

func TestWalk_OnVisit(t *testing.T) {
	var depths []int
	_, err := alerttree.Walk(escalation(t), alerttree.BreadthFirst, alerttree.WithOnVisit(func(_ string, d int) error {
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1, 2, 2, 2}, depths)

	stop := errors.New("stop")
	got, err := alerttree.Walk(escalation(t), alerttree.PreOrder, alerttree.WithOnVisit(func(name string, _ int) error {
		if name == "C" {
			return stop
		}
		return nil
	}))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, `OnVisit hook for "C"`)
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, order := range alerttree.Orders {
		_, err := alerttree.Walk(escalation(t), order, alerttree.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, order)
	}
}

func TestWalk_UnknownOrder(t *testing.T) {
	_, err := alerttree.Walk(escalation(t), alerttree.Order("levelorder"))
	assert.ErrorIs(t, err, alerttree.ErrUnknownOrder)
}

func TestDecode(t *testing.T) {
	root, err := alerttree.Decode(strings.NewReader(`{"node": "ids", "root": "ignored", "children": [{"node": "waf"}]}`))
	require.NoError(t, err)
	assert.Equal(t, alerttree.Node{Name: "ids", Children: []alerttree.Node{{Name: "waf"}}}, root)

	_, err = alerttree.Decode(strings.NewReader("root: A\nchildren:\n  - children: []\n"))
	assert.ErrorIs(t, err, alerttree.ErrMalformed)

	_, err = alerttree.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, alerttree.ErrMalformed)

	_, err = alerttree.Load("does-not-exist.yaml")
	assert.Error(t, err)
}
