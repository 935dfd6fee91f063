package grid

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario errors.
var (
	ErrMissingStart  = errors.New("scenario has no start")
	ErrMissingGoal   = errors.New("scenario has no goal")
	ErrRaggedRows    = errors.New("scenario rows have different lengths")
	ErrBadDimensions = errors.New("scenario dimensions must be positive")
	ErrDuplicateMark = errors.New("scenario marker appears more than once")
	ErrUnknownCell   = errors.New("unknown cell character")
)

// Coord is an [x, y] pair in scenario files.
type Coord struct {
	X, Y int
}

// UnmarshalYAML decodes a two element sequence.
func (c *Coord) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("coordinate: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must have 2 elements, got %d", len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// Scenario describes a grid, a start and a goal.
//
// The board is given either by width, height and obstacles, or by rows:
// one string per row where '#' is blocked, '.' is open, and 'S' and 'G'
// mark the start and goal. Explicit start, goal and obstacles are merged
// with the rows.
type Scenario struct {
	Name      string   `yaml:"name,omitempty"`
	Width     int      `yaml:"width,omitempty"`
	Height    int      `yaml:"height,omitempty"`
	Start     *Coord   `yaml:"start,omitempty"`
	Goal      *Coord   `yaml:"goal,omitempty"`
	Obstacles []Coord  `yaml:"obstacles,omitempty"`
	Rows      []string `yaml:"rows,omitempty"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses YAML scenario data.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// Build constructs the grid and the start and goal points. The goal may
// lie outside the board and the start may be blocked.
func (s *Scenario) Build() (*Grid, Point, Point, error) {
	width, height := s.Width, s.Height
	start, goal := s.Start, s.Goal
	var blocked [][2]int

	if len(s.Rows) > 0 {
		if width == 0 {
			width = len(s.Rows[0])
		}
		if height == 0 {
			height = len(s.Rows)
		}
		for y, row := range s.Rows {
			if len(row) != len(s.Rows[0]) {
				return nil, Point{}, Point{}, fmt.Errorf("%w: row %d", ErrRaggedRows, y)
			}
			for x, cell := range row {
				switch cell {
				case '.':
				case '#':
					blocked = append(blocked, [2]int{x, y})
				case 'S':
					if start != nil && s.Start == nil {
						return nil, Point{}, Point{}, fmt.Errorf("%w: S", ErrDuplicateMark)
					}
					if s.Start == nil {
						start = &Coord{X: x, Y: y}
					}
				case 'G':
					if goal != nil && s.Goal == nil {
						return nil, Point{}, Point{}, fmt.Errorf("%w: G", ErrDuplicateMark)
					}
					if s.Goal == nil {
						goal = &Coord{X: x, Y: y}
					}
				default:
					return nil, Point{}, Point{}, fmt.Errorf("%w %q at (%d, %d)", ErrUnknownCell, cell, x, y)
				}
			}
		}
	}

	if width <= 0 || height <= 0 {
		return nil, Point{}, Point{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if start == nil {
		return nil, Point{}, Point{}, ErrMissingStart
	}
	if goal == nil {
		return nil, Point{}, Point{}, ErrMissingGoal
	}

	for _, o := range s.Obstacles {
		blocked = append(blocked, [2]int{o.X, o.Y})
	}
	g := New(width, height, blocked...)
	return g, g.Point(start.X, start.Y), g.Point(goal.X, goal.Y), nil
}
