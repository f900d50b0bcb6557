package types

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/cottand/tyra/internal/log"
	"github.com/pkg/errors"
)

var logger = log.Section("types")

// maxAssignabilityDepth bounds the recursion of a single query. Bounds which refer
// back to the variable they bound (T extends Comparable<T>) normally make progress
// towards a class, but a malformed host model could make them loop forever.
const maxAssignabilityDepth = 250

// Captures maps type variables to the first type they were successfully checked
// against during an assignability query. Further occurrences of the same variable
// in that query must then match it exactly.
//
// A Captures belongs to one query, and must not be shared by concurrent queries.
type Captures map[VarKey]Type

func (c Captures) Get(v *TypeVar) (Type, bool) {
	t, ok := c[v.Key()]
	return t, ok
}

// Sorted lists the captured variables by name, for display
func (c Captures) Sorted() []VarKey {
	keys := slices.Collect(maps.Keys(c))
	slices.SortFunc(keys, func(a, b VarKey) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.String(), b.String()))
	})
	return keys
}

// IsAssignable reports whether a value of type right can be stored where left is
// expected, without binding any type variable.
func IsAssignable(left, right Type) bool {
	captures := Captures{}
	return IsAssignableWith(left, right, captures) && len(captures) == 0
}

// IsAssignableWith reports whether a value of type right can be stored where left is
// expected. Type variables of left are bound in captures to the types they are
// checked against, and variables already in captures must match their binding.
// A nil captures is allowed, in which case bindings are discarded after the query.
func IsAssignableWith(left, right Type, captures Captures) bool {
	if captures == nil {
		captures = Captures{}
	}
	q := &assignability{captures: captures}
	result := q.isAssignable(left, right)
	logger.Debug("assignability", "left", left, "right", right, "result", result, "captures", len(captures))
	return result
}

// assignability is the state of a single query
type assignability struct {
	captures Captures
	depth    int
}

func (q *assignability) isAssignable(left, right Type) bool {
	q.depth++
	defer func() { q.depth-- }()
	if q.depth > maxAssignabilityDepth {
		logger.Warn("assignability depth limit exceeded, assuming not assignable", "left", left, "right", right)
		return false
	}
	rightVisitor, _ := Accept[Visitor[bool]](leftDispatch{q}, left)
	if rightVisitor == nil {
		// a nil left accepts nothing
		return false
	}
	result, _ := Accept(rightVisitor, right)
	return result
}

func (q *assignability) all(ts []Type, f func(Type) bool) bool {
	for _, t := range ts {
		if !f(t) {
			return false
		}
	}
	return true
}

// fitsWildcard is the rule for any left against a wildcard right: all lower bounds
// of right fit in left and left fits in all upper bounds of right
func (q *assignability) fitsWildcard(left Type, right *Wildcard) bool {
	return q.all(right.lower, func(lower Type) bool { return q.isAssignable(lower, left) }) &&
		q.all(right.UpperBounds(), func(upper Type) bool { return q.isAssignable(left, upper) })
}

// leftDispatch selects the right hand visitor specialised for the left type
type leftDispatch struct {
	q *assignability
}

func (d leftDispatch) VisitClass(c *Class) (Visitor[bool], error) {
	return classLeft{d.q, c}, nil
}
func (d leftDispatch) VisitParameterized(p *Parameterized) (Visitor[bool], error) {
	return parameterizedLeft{d.q, p}, nil
}
func (d leftDispatch) VisitGenericArray(a *GenericArray) (Visitor[bool], error) {
	return genericArrayLeft{d.q, a}, nil
}
func (d leftDispatch) VisitWildcard(w *Wildcard) (Visitor[bool], error) {
	return wildcardLeft{d.q, w}, nil
}
func (d leftDispatch) VisitTypeVar(v *TypeVar) (Visitor[bool], error) {
	return typeVarLeft{d.q, v}, nil
}

type classLeft struct {
	q    *assignability
	left *Class
}

func (l classLeft) VisitClass(right *Class) (bool, error) {
	return l.left.IsAssignableFrom(right), nil
}

func (l classLeft) VisitParameterized(right *Parameterized) (bool, error) {
	return l.VisitClass(right.raw)
}

func (l classLeft) VisitGenericArray(right *GenericArray) (bool, error) {
	return l.left.IsArray() && l.q.isAssignable(l.left.component, right.component), nil
}

func (l classLeft) VisitWildcard(right *Wildcard) (bool, error) {
	return l.q.fitsWildcard(l.left, right), nil
}

func (l classLeft) VisitTypeVar(right *TypeVar) (bool, error) {
	if captured, ok := l.q.captures.Get(right); ok {
		return l.left.Equal(captured), nil
	}
	return l.q.all(right.Bounds(), func(bound Type) bool { return l.q.isAssignable(l.left, bound) }), nil
}

type parameterizedLeft struct {
	q    *assignability
	left *Parameterized
}

// VisitClass compares against the erasure of right, reparameterized as the raw
// class of left
func (l parameterizedLeft) VisitClass(right *Class) (bool, error) {
	asLeft, err := FindParameterized(right, l.left.raw)
	if err != nil {
		mustNotBeArityMismatch(err)
		return false, nil
	}
	return l.q.isAssignable(l.left, asLeft), nil
}

func (l parameterizedLeft) VisitParameterized(right *Parameterized) (bool, error) {
	if !l.q.isAssignable(l.left.raw, right.raw) {
		return false, nil
	}
	rightArgs, err := ResolveArguments(right, l.left.raw)
	if err != nil {
		mustNotBeArityMismatch(err)
		return false, nil
	}
	if len(rightArgs) != len(l.left.args) {
		panic(arityMismatch(l.left.raw, len(l.left.args)))
	}
	for i, leftArg := range l.left.args {
		if !l.q.isAssignable(leftArg, rightArgs[i]) {
			return false, nil
		}
	}
	return true, nil
}

func (l parameterizedLeft) VisitGenericArray(*GenericArray) (bool, error) { return false, nil }

func (l parameterizedLeft) VisitWildcard(right *Wildcard) (bool, error) {
	return l.q.fitsWildcard(l.left, right), nil
}

func (l parameterizedLeft) VisitTypeVar(right *TypeVar) (bool, error) {
	return l.q.all(right.Bounds(), func(bound Type) bool { return l.q.isAssignable(l.left, bound) }), nil
}

// mustNotBeArityMismatch panics if err reports malformed generic declarations,
// which is not a negative answer but a broken host model
func mustNotBeArityMismatch(err error) {
	var arity *ArityMismatchError
	if errors.As(err, &arity) {
		panic(err)
	}
}

type genericArrayLeft struct {
	q    *assignability
	left *GenericArray
}

func (l genericArrayLeft) VisitClass(right *Class) (bool, error) {
	return right.IsArray() && l.q.isAssignable(l.left.component, right.component), nil
}

func (l genericArrayLeft) VisitGenericArray(right *GenericArray) (bool, error) {
	return l.q.isAssignable(l.left.component, right.component), nil
}

func (l genericArrayLeft) VisitParameterized(*Parameterized) (bool, error) { return false, nil }
func (l genericArrayLeft) VisitWildcard(*Wildcard) (bool, error)           { return false, nil }
func (l genericArrayLeft) VisitTypeVar(*TypeVar) (bool, error)             { return false, nil }

type wildcardLeft struct {
	q    *assignability
	left *Wildcard
}

// VisitClass requires right to be a supertype of every lower bound of left and a
// subtype of every upper bound
func (l wildcardLeft) VisitClass(right *Class) (bool, error) {
	q := l.q
	return q.all(l.left.lower, func(lower Type) bool { return q.isAssignable(right, lower) }) &&
		q.all(l.left.UpperBounds(), func(upper Type) bool { return q.isAssignable(upper, right) }), nil
}

// VisitTypeVar checks right against the upper bounds of left as is, so that
// `? extends A` admits A itself. Every lower bound of left must accept every declared
// bound of right, since right may stand for any of its bounds.
func (l wildcardLeft) VisitTypeVar(right *TypeVar) (bool, error) {
	q := l.q
	return q.all(l.left.lower, func(lower Type) bool {
		return q.all(right.Bounds(), func(bound Type) bool { return q.isAssignable(lower, bound) })
	}) && q.all(l.left.UpperBounds(), func(upper Type) bool { return q.isAssignable(upper, right) }), nil
}

// VisitWildcard cross checks the bounds: every lower bound of left must fit under
// every lower bound of right, every upper bound of right must fit under every upper
// bound of left
func (l wildcardLeft) VisitWildcard(right *Wildcard) (bool, error) {
	q := l.q
	lowerOk := q.all(l.left.lower, func(leftLower Type) bool {
		return q.all(right.lower, func(rightLower Type) bool { return q.isAssignable(rightLower, leftLower) })
	})
	return lowerOk && q.all(l.left.UpperBounds(), func(leftUpper Type) bool {
		return q.all(right.UpperBounds(), func(rightUpper Type) bool { return q.isAssignable(leftUpper, rightUpper) })
	}), nil
}

func (l wildcardLeft) VisitParameterized(*Parameterized) (bool, error) { return false, nil }
func (l wildcardLeft) VisitGenericArray(*GenericArray) (bool, error)   { return false, nil }

type typeVarLeft struct {
	q    *assignability
	left *TypeVar
}

// VisitClass binds left to right unless it was already bound, in which case right
// must be exactly the earlier binding
func (l typeVarLeft) VisitClass(right *Class) (bool, error) {
	q := l.q
	if captured, ok := q.captures.Get(l.left); ok {
		return right.Equal(captured), nil
	}
	q.captures[l.left.Key()] = right
	return q.all(l.left.Bounds(), func(bound Type) bool { return q.isAssignable(bound, right) }), nil
}

// VisitTypeVar accepts the same variable, or a variable whose bounds all fit in left
func (l typeVarLeft) VisitTypeVar(right *TypeVar) (bool, error) {
	if l.left.Key() == right.Key() {
		return true, nil
	}
	return l.q.all(right.Bounds(), func(bound Type) bool { return l.q.isAssignable(l.left, bound) }), nil
}

func (l typeVarLeft) VisitParameterized(*Parameterized) (bool, error) { return false, nil }
func (l typeVarLeft) VisitGenericArray(*GenericArray) (bool, error)   { return false, nil }
func (l typeVarLeft) VisitWildcard(*Wildcard) (bool, error)           { return false, nil }
