package astar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/pdrpinto/astar/v2"
)

// network is a hand-built directed graph whose states count how often the
// engine asks about them.
type network struct {
	edges         map[string][]string
	invalid       map[string]bool
	estimates     map[string]float64
	validCalls    map[string]int
	estimateCalls int
}

type node struct {
	name string
	net  *network
}

func newNetwork() *network {
	return &network{
		edges:      map[string][]string{},
		invalid:    map[string]bool{},
		estimates:  map[string]float64{},
		validCalls: map[string]int{},
	}
}

func (n *network) edge(from, to string) { n.edges[from] = append(n.edges[from], to) }

func (n *network) node(name string) node { return node{name: name, net: n} }

func (s node) Valid() bool {
	s.net.validCalls[s.name]++
	return !s.net.invalid[s.name]
}

func (s node) Neighbors() []node {
	var out []node
	for _, to := range s.net.edges[s.name] {
		out = append(out, s.net.node(to))
	}
	return out
}

func (s node) EstimateTo(node) float64 {
	s.net.estimateCalls++
	return s.net.estimates[s.name]
}

func names(path []node) []string {
	out := make([]string, len(path))
	for i, s := range path {
		out[i] = s.name
	}
	return out
}

func TestInvalidStateReachedTwiceIsEvaluatedOnce(t *testing.T) {
	n := newNetwork()
	n.edge("s", "x")
	n.edge("s", "y")
	n.edge("y", "x")
	n.edge("x", "g")
	n.invalid["x"] = true

	path, found := astar.FindPath(n.node("s"), n.node("g"))

	assert.False(t, found)
	assert.Nil(t, path)
	assert.Equal(t, 1, n.validCalls["x"])
}

func TestInvalidStateFallsBackToAlternateRoute(t *testing.T) {
	n := newNetwork()
	n.edge("s", "x")
	n.edge("x", "g")
	n.edge("s", "y")
	n.edge("y", "z")
	n.edge("z", "g")
	n.invalid["x"] = true

	path, found := astar.FindPath(n.node("s"), n.node("g"))

	require.True(t, found)
	assert.Equal(t, []string{"s", "y", "z", "g"}, names(path))
	assert.Equal(t, 1, n.validCalls["x"])
}

func TestValidStateReachedTwiceIsExpandedOnce(t *testing.T) {
	n := newNetwork()
	n.edge("s", "a")
	n.edge("s", "b")
	n.edge("a", "c")
	n.edge("b", "c")
	n.edge("c", "g")

	stepper := astar.NewStepper(n.node("s"), n.node("g"))
	var outcomes []string
	for !stepper.Done() {
		snapshot := stepper.Step()
		outcomes = append(outcomes, snapshot.Current.name+":"+snapshot.Outcome.String())
	}

	assert.Equal(t, []string{
		"s:expanded", "a:expanded", "b:expanded", "c:expanded", "c:skipped-visited", "g:goal-reached",
	}, outcomes)
	assert.Equal(t, 1, n.validCalls["c"])

	res := stepper.Result()
	require.True(t, res.Found)
	assert.Equal(t, []string{"s", "a", "c", "g"}, names(res.Path))
}

func TestInvalidStartEqualToGoalIsFound(t *testing.T) {
	n := newNetwork()
	n.invalid["s"] = true

	path, found := astar.FindPath(n.node("s"), n.node("s"))

	require.True(t, found)
	assert.Equal(t, []string{"s"}, names(path))
	assert.Zero(t, n.validCalls["s"])
}

func TestHeuristicEvaluatedOncePerEntry(t *testing.T) {
	n := newNetwork()
	n.edge("s", "a")
	n.edge("s", "b")
	n.edge("a", "g")
	n.edge("b", "g")
	n.estimates["s"] = 2
	n.estimates["a"] = 1
	n.estimates["b"] = 1

	res, err := astar.Search(context.Background(), n.node("s"), n.node("g"))

	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, res.Pushed, n.estimateCalls)
}

func TestHeuristicGuidesExpansion(t *testing.T) {
	n := newNetwork()
	n.edge("s", "left")
	n.edge("s", "right")
	n.edge("left", "mid")
	n.edge("mid", "g")
	n.edge("right", "g")
	n.estimates["left"] = 2
	n.estimates["mid"] = 1
	n.estimates["right"] = 1

	res, err := astar.Search(context.Background(), n.node("s"), n.node("g"))

	require.NoError(t, err)
	assert.Equal(t, []string{"s", "right", "g"}, names(res.Path))
	assert.Equal(t, 0, n.validCalls["left"])
}

func TestSearchCancelled(t *testing.T) {
	n := newNetwork()
	n.edge("s", "g")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.Search(ctx, n.node("s"), n.node("g"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	var cancelled *astar.CancelledError
	require.True(t, errors.As(err, &cancelled))
	assert.Equal(t, 0, cancelled.Expanded)
	assert.False(t, res.Found)
}
