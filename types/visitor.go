package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Visitor is a function over the five type expression variants. Implementations
// which only make sense for some variants embed Unsupported.
type Visitor[R any] interface {
	VisitClass(c *Class) (R, error)
	VisitParameterized(p *Parameterized) (R, error)
	VisitGenericArray(a *GenericArray) (R, error)
	VisitWildcard(w *Wildcard) (R, error)
	VisitTypeVar(v *TypeVar) (R, error)
}

// Accept dispatches v on the variant of t. A nil t yields the zero R.
func Accept[R any](v Visitor[R], t Type) (R, error) {
	switch t := t.(type) {
	case nil:
		var zero R
		return zero, nil
	case *Class:
		return v.VisitClass(t)
	case *Parameterized:
		return v.VisitParameterized(t)
	case *GenericArray:
		return v.VisitGenericArray(t)
	case *Wildcard:
		return v.VisitWildcard(t)
	case *TypeVar:
		return v.VisitTypeVar(t)
	default:
		panic(fmt.Sprintf("unreachable: unknown type expression %T", t))
	}
}

// AcceptAll maps Accept over ts, stopping at the first error
func AcceptAll[R any](v Visitor[R], ts []Type) ([]R, error) {
	if ts == nil {
		return nil, nil
	}
	results := make([]R, 0, len(ts))
	for _, t := range ts {
		r, err := Accept(v, t)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Unsupported implements Visitor by failing with an UnsupportedVariantError for
// every variant. Name appears in the error.
type Unsupported[R any] struct {
	Name string
}

func (u Unsupported[R]) fail(subject fmt.Stringer) (R, error) {
	var zero R
	return zero, errors.WithStack(&UnsupportedVariantError{Visitor: u.Name, Subject: subject})
}

func (u Unsupported[R]) VisitClass(c *Class) (R, error)                 { return u.fail(c) }
func (u Unsupported[R]) VisitParameterized(p *Parameterized) (R, error) { return u.fail(p) }
func (u Unsupported[R]) VisitGenericArray(a *GenericArray) (R, error)   { return u.fail(a) }
func (u Unsupported[R]) VisitWildcard(w *Wildcard) (R, error)           { return u.fail(w) }
func (u Unsupported[R]) VisitTypeVar(v *TypeVar) (R, error)             { return u.fail(v) }

func (u Unsupported[R]) VisitMethod(m *Method) (R, error)           { return u.fail(m) }
func (u Unsupported[R]) VisitConstructor(c *Constructor) (R, error) { return u.fail(c) }
func (u Unsupported[R]) VisitField(f *Field) (R, error)             { return u.fail(f) }
func (u Unsupported[R]) VisitParameter(p *Parameter) (R, error)     { return u.fail(p) }
func (u Unsupported[R]) VisitPackage(p *Package) (R, error)         { return u.fail(p) }

// DeclarationVisitor is a function over generic declarations
type DeclarationVisitor[R any] interface {
	VisitClass(c *Class) (R, error)
	VisitMethod(m *Method) (R, error)
	VisitConstructor(c *Constructor) (R, error)
}

func AcceptDeclaration[R any](v DeclarationVisitor[R], d GenericDeclaration) (R, error) {
	switch d := d.(type) {
	case nil:
		var zero R
		return zero, nil
	case *Class:
		return v.VisitClass(d)
	case *Method:
		return v.VisitMethod(d)
	case *Constructor:
		return v.VisitConstructor(d)
	default:
		panic(fmt.Sprintf("unreachable: unknown generic declaration %T", d))
	}
}

// MemberVisitor is a function over class members
type MemberVisitor[R any] interface {
	VisitField(f *Field) (R, error)
	VisitMethod(m *Method) (R, error)
	VisitConstructor(c *Constructor) (R, error)
}

func AcceptMember[R any](v MemberVisitor[R], m Member) (R, error) {
	switch m := m.(type) {
	case nil:
		var zero R
		return zero, nil
	case *Field:
		return v.VisitField(m)
	case *Method:
		return v.VisitMethod(m)
	case *Constructor:
		return v.VisitConstructor(m)
	default:
		panic(fmt.Sprintf("unreachable: unknown member %T", m))
	}
}

// ElementVisitor is a function over everything that can be annotated
type ElementVisitor[R any] interface {
	VisitClass(c *Class) (R, error)
	VisitMethod(m *Method) (R, error)
	VisitConstructor(c *Constructor) (R, error)
	VisitField(f *Field) (R, error)
	VisitParameter(p *Parameter) (R, error)
	VisitPackage(p *Package) (R, error)
}

func AcceptElement[R any](v ElementVisitor[R], e Element) (R, error) {
	switch e := e.(type) {
	case nil:
		var zero R
		return zero, nil
	case *Class:
		return v.VisitClass(e)
	case *Method:
		return v.VisitMethod(e)
	case *Constructor:
		return v.VisitConstructor(e)
	case *Field:
		return v.VisitField(e)
	case *Parameter:
		return v.VisitParameter(e)
	case *Package:
		return v.VisitPackage(e)
	default:
		panic(fmt.Sprintf("unreachable: unknown element %T", e))
	}
}
