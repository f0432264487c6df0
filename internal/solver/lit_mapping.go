package solver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

type inconsistentLitMapping []error

func (inconsistentLitMapping) Error() string {
	return "internal solver failure"
}

// litMapping performs translation between the input Constraints and the
// literals that appear in the SAT formula.
type litMapping struct {
	inorder     []Constraint
	lits        map[Identifier]z.Lit
	constraints map[z.Lit]Constraint
	c           *logic.C
	errs        inconsistentLitMapping
}

// newLitMapping returns a new litMapping with its state initialized based on
// the provided constraints, including the translation tables between
// Identifiers/Constraints and the inputs to the underlying solver.
func newLitMapping(constraints []Constraint) *litMapping {
	d := litMapping{
		inorder:     make([]Constraint, len(constraints)),
		lits:        make(map[Identifier]z.Lit, len(constraints)),
		constraints: make(map[z.Lit]Constraint, len(constraints)),
		c:           logic.NewC(),
	}

	for i, constraint := range constraints {
		d.inorder[i] = constraint

		m := constraint.apply(d.c, &d)
		if m == z.LitNull {
			// This constraint doesn't have a useful representation
			// in the SAT inputs.
			continue
		}

		d.constraints[m] = constraint
	}

	return &d
}

// LitOf returns the positive literal corresponding to the variable with the
// given Identifier, creating one on first use.
func (d *litMapping) LitOf(id Identifier) z.Lit {
	if lit, ok := d.lits[id]; ok {
		return lit
	}
	d.lits[id] = d.c.Lit()
	return d.lits[id]
}

// ConstraintOf returns the constraint corresponding to the provided literal,
// or a zeroConstraint if no such constraint exists.
func (d *litMapping) ConstraintOf(m z.Lit) Constraint {
	if a, ok := d.constraints[m]; ok {
		return a
	}
	d.errs = append(d.errs, fmt.Errorf("no constraint corresponding to %s", m))
	return zeroConstraint{}
}

// Error returns a single error value that is an aggregation of all errors
// encountered during a litMapping's lifetime, or nil if there have been no
// errors. A non-nil return value likely indicates a problem with the solver
// or constraint implementations.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}

// AddConstraints teaches the constraints encoded in the embedded circuit to
// the solver g.
func (d *litMapping) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
}

// AssumeConstraints assumes the literal of every non-anchor constraint, so
// that an unsatisfiable result can be traced back to the constraints that
// caused it.
func (d *litMapping) AssumeConstraints(s inter.S) {
	for m, c := range d.constraints {
		if !c.anchor() {
			s.Assume(m)
		}
	}
}

// AnchorIdentifiers returns a slice containing the Identifiers of every
// variable with at least one anchor constraint, in the order they appear in
// the input.
func (d *litMapping) AnchorIdentifiers() []Identifier {
	var ids []Identifier
	for _, c := range d.inorder {
		if c.anchor() {
			ids = append(ids, c.Subject())
		}
	}
	return ids
}

// Conflicts returns the set of constraints that the solver refused in its
// last failed attempt.
func (d *litMapping) Conflicts(g inter.Assumable) []Constraint {
	whys := g.Why(nil)
	as := make([]Constraint, 0, len(whys))
	for _, why := range whys {
		if a, ok := d.constraints[why]; ok {
			as = append(as, a)
		}
	}
	return as
}

// Selection returns the Identifiers of every variable the model assigned
// true.
func (d *litMapping) Selection(g inter.S) []Identifier {
	selection := make([]Identifier, 0)
	for id, lit := range d.lits {
		if g.Value(lit) {
			selection = append(selection, id)
		}
	}
	return selection
}
