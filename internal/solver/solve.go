// Package solver lowers a set of variable constraints onto a SAT solver and
// reports which variables a model selects. It backs the exact-solution board
// check that cross-validates what the randomized descents sample.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

var ErrIncomplete = errors.New("cancelled before a solution could be found")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// NotSatisfiable is an error composed of a set of applied constraints
// sufficient to make a solution impossible.
type NotSatisfiable []Constraint

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(s, "\n"))
}

type Solver interface {
	Solve(context.Context) ([]Identifier, error)
}

type solver struct {
	g      inter.S
	litMap *litMapping
}

// Solve returns the Identifiers of the variables selected by a satisfying
// model of the input constraints. If no solution is possible a
// NotSatisfiable error carrying the conflicting constraints is returned.
func (s *solver) Solve(_ context.Context) ([]Identifier, error) {
	// teach all constraints to the solver
	s.litMap.AddConstraints(s.g)

	// collect literals of all mandatory variables to assume as a baseline
	anchors := s.litMap.AnchorIdentifiers()
	assumptions := make([]z.Lit, len(anchors))
	for i := range anchors {
		assumptions[i] = s.litMap.LitOf(anchors[i])
	}
	s.g.Assume(assumptions...)

	// assume that all the remaining constraints hold
	s.litMap.AssumeConstraints(s.g)

	var result []Identifier
	var err error
	switch s.g.Solve() {
	case satisfiable:
		result = s.litMap.Selection(s.g)
	case unsatisfiable:
		err = NotSatisfiable(s.litMap.Conflicts(s.g))
	default:
		err = ErrIncomplete
	}

	// This likely indicates a bug, so discard whatever
	// return values were produced.
	if derr := s.litMap.Error(); derr != nil {
		return nil, derr
	}

	return result, err
}

func New(options ...Option) (Solver, error) {
	s := solver{g: gini.New()}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

func WithInput(input []Constraint) Option {
	return func(s *solver) error {
		s.litMap = newLitMapping(input)
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.litMap == nil {
			s.litMap = newLitMapping(nil)
		}
		return nil
	},
}
