// Package grid is a 4-connected rectangular grid domain for the astar
// package. Points are cheap values; validity (in bounds, not blocked) is
// only evaluated when the search pops a point.
package grid

import "fmt"

// Grid is a width x height board with blocked cells. It must not be
// modified while a search over its points is running.
type Grid struct {
	width     int
	height    int
	obstacles map[[2]int]struct{}
}

// New returns a grid with the given obstacles blocked.
func New(width, height int, obstacles ...[2]int) *Grid {
	g := &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[[2]int]struct{}, len(obstacles)),
	}
	for _, o := range obstacles {
		g.Block(o[0], o[1])
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Obstacles returns the number of blocked cells, including any outside the bounds.
func (g *Grid) Obstacles() int { return len(g.obstacles) }

// Block marks (x, y) as occupied.
func (g *Grid) Block(x, y int) {
	g.obstacles[[2]int{x, y}] = struct{}{}
}

// Blocked reports whether (x, y) is occupied.
func (g *Grid) Blocked(x, y int) bool {
	_, ok := g.obstacles[[2]int{x, y}]
	return ok
}

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Point returns the point (x, y) of g. It may be out of bounds.
func (g *Grid) Point(x, y int) Point {
	return Point{X: x, Y: y, grid: g}
}

// Point is a location on a Grid. Two points are equal when they share
// coordinates and grid.
type Point struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	grid *Grid
}

// Valid reports whether p is in bounds and not blocked.
func (p Point) Valid() bool {
	return p.grid.InBounds(p.X, p.Y) && !p.grid.Blocked(p.X, p.Y)
}

// Neighbors returns the four orthogonal points, without filtering.
func (p Point) Neighbors() []Point {
	return []Point{
		{X: p.X - 1, Y: p.Y, grid: p.grid},
		{X: p.X + 1, Y: p.Y, grid: p.grid},
		{X: p.X, Y: p.Y - 1, grid: p.grid},
		{X: p.X, Y: p.Y + 1, grid: p.grid},
	}
}

// EstimateTo returns the Manhattan distance to goal.
func (p Point) EstimateTo(goal Point) float64 {
	return float64(Manhattan(p, goal))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
