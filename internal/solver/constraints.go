package solver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Identifier values uniquely identify particular variables within the input
// to a single call to Solve.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Constraint limits the circumstances under which its subject variable can
// appear in a solution.
type Constraint interface {
	String() string
	Subject() Identifier
	apply(c *logic.C, lm *litMapping) z.Lit
	anchor() bool
}

type mandatory struct {
	subject Identifier
}

func (constraint mandatory) String() string {
	return fmt.Sprintf("%s is mandatory", constraint.subject)
}

func (constraint mandatory) Subject() Identifier {
	return constraint.subject
}

func (constraint mandatory) apply(_ *logic.C, lm *litMapping) z.Lit {
	return lm.LitOf(constraint.subject)
}

func (constraint mandatory) anchor() bool {
	return true
}

// Mandatory returns a Constraint that permits only solutions containing
// the subject variable.
func Mandatory(subject Identifier) Constraint {
	return mandatory{subject: subject}
}

type prohibited struct {
	subject Identifier
}

func (constraint prohibited) String() string {
	return fmt.Sprintf("%s is prohibited", constraint.subject)
}

func (constraint prohibited) Subject() Identifier {
	return constraint.subject
}

func (constraint prohibited) apply(_ *logic.C, lm *litMapping) z.Lit {
	return lm.LitOf(constraint.subject).Not()
}

func (constraint prohibited) anchor() bool {
	return false
}

// Prohibited returns a Constraint that rejects any solution containing the
// subject variable.
func Prohibited(subject Identifier) Constraint {
	return prohibited{subject: subject}
}

type dependency struct {
	subject  Identifier
	operands []Identifier
}

func (constraint dependency) String() string {
	if len(constraint.operands) == 0 {
		return fmt.Sprintf("%s has a dependency without any candidates to satisfy it", constraint.subject)
	}
	s := make([]string, len(constraint.operands))
	for i, each := range constraint.operands {
		s[i] = string(each)
	}
	return fmt.Sprintf("%s requires at least one of %s", constraint.subject, strings.Join(s, ", "))
}

func (constraint dependency) Subject() Identifier {
	return constraint.subject
}

func (constraint dependency) apply(c *logic.C, lm *litMapping) z.Lit {
	m := lm.LitOf(constraint.subject).Not()
	for _, each := range constraint.operands {
		m = c.Or(m, lm.LitOf(each))
	}
	return m
}

func (constraint dependency) anchor() bool {
	return false
}

// Dependency returns a Constraint that only permits solutions containing the
// subject variable if at least one of the named operands also appears in the
// solution.
func Dependency(subject Identifier, operands ...Identifier) Constraint {
	return dependency{subject: subject, operands: operands}
}

type conflict struct {
	subject Identifier
	operand Identifier
}

func (constraint conflict) String() string {
	return fmt.Sprintf("%s conflicts with %s", constraint.subject, constraint.operand)
}

func (constraint conflict) Subject() Identifier {
	return constraint.subject
}

func (constraint conflict) apply(c *logic.C, lm *litMapping) z.Lit {
	return c.Or(lm.LitOf(constraint.subject).Not(), lm.LitOf(constraint.operand).Not())
}

func (constraint conflict) anchor() bool {
	return false
}

// Conflict returns a Constraint that permits solutions containing the
// subject variable, the operand variable, or neither, but not both.
func Conflict(subject Identifier, operand Identifier) Constraint {
	return conflict{subject: subject, operand: operand}
}

// zeroConstraint is returned by ConstraintOf in error cases.
type zeroConstraint struct{}

var _ Constraint = zeroConstraint{}

func (zeroConstraint) String() string {
	return ""
}

func (zeroConstraint) Subject() Identifier {
	return ""
}

func (zeroConstraint) apply(_ *logic.C, _ *litMapping) z.Lit {
	return z.LitNull
}

func (zeroConstraint) anchor() bool {
	return false
}
