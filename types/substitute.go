package types

import (
	"hash/fnv"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
)

// Expand replaces the type variables of t by the arguments reference supplies for
// them, when reference is a subtype of their declaring class. Other variables are
// left untouched.
//
// For example, with `interface Provider extends Supplier<Integer>`, the return type
// T of Supplier.get expands to Integer relative to Provider.
func Expand(t Type, reference *Class) (Type, error) {
	return Accept[Type](expander{reference: reference}, t)
}

// ExpandMember expands the type produced by m (see MemberType) relative to reference
func ExpandMember(m Member, reference *Class) (Type, error) {
	return Expand(MemberType(m), reference)
}

// Replace substitutes the variables of t found in replacements, in a single pass.
// Captures of an assignability query can be used directly.
func Replace(t Type, replacements Captures) Type {
	replaced, _ := Accept[Type](replacer{replacements: replacements}, t)
	return replaced
}

// RemoveVariables turns every type variable of t into a wildcard bounded by the
// variable's own bounds, with their variables removed in turn. A variable met again
// while removing its own bounds becomes `?`.
func RemoveVariables(t Type) Type {
	removed, _ := Accept[Type](remover{visited: immutable.NewSet[VarKey](varKeyHasher{})}, t)
	return removed
}

// the rebuild functions map sub over the children of the composite variants, so
// that the substitution visitors only need to define what happens to variables
func rebuildParameterized(sub Visitor[Type], p *Parameterized) (Type, error) {
	owner, err := Accept(sub, p.owner)
	if err != nil {
		return nil, err
	}
	args, err := AcceptAll(sub, p.args)
	if err != nil {
		return nil, err
	}
	return NewParameterized(p.raw, owner, args...), nil
}

func rebuildGenericArray(sub Visitor[Type], a *GenericArray) (Type, error) {
	component, err := Accept(sub, a.component)
	if err != nil {
		return nil, err
	}
	return NewGenericArray(component), nil
}

func rebuildWildcard(sub Visitor[Type], w *Wildcard) (Type, error) {
	lower, err := AcceptAll(sub, w.lower)
	if err != nil {
		return nil, err
	}
	upper, err := AcceptAll(sub, w.upper)
	if err != nil {
		return nil, err
	}
	return NewWildcard(lower, upper), nil
}

type expander struct {
	reference *Class
}

func (e expander) VisitClass(c *Class) (Type, error) { return c, nil }

func (e expander) VisitParameterized(p *Parameterized) (Type, error) {
	return rebuildParameterized(e, p)
}

func (e expander) VisitGenericArray(a *GenericArray) (Type, error) {
	return rebuildGenericArray(e, a)
}

func (e expander) VisitWildcard(w *Wildcard) (Type, error) {
	return rebuildWildcard(e, w)
}

func (e expander) VisitTypeVar(v *TypeVar) (Type, error) {
	args, err := AcceptDeclaration[[]Type](declarationArguments{reference: e.reference}, v.decl)
	var unrelated *UnrelatedTypesError
	var unsupported *UnsupportedVariantError
	if errors.As(err, &unrelated) || errors.As(err, &unsupported) {
		return v, nil
	}
	if err != nil {
		return nil, err
	}
	if args == nil {
		return v, nil
	}
	for i, param := range v.decl.TypeParams() {
		if param.name != v.name {
			continue
		}
		// the argument may itself be a variable bound further down the hierarchy
		if args[i].Equal(v) {
			return v, nil
		}
		return Accept[Type](e, args[i])
	}
	return v, nil
}

// declarationArguments resolves the arguments reference supplies to a generic class.
// Variables of methods and constructors have no arguments outside of a call.
type declarationArguments struct {
	Unsupported[[]Type]
	reference *Class
}

func (d declarationArguments) VisitClass(c *Class) ([]Type, error) {
	return argumentsResolver{reference: c}.VisitClass(d.reference)
}

type replacer struct {
	replacements Captures
}

func (r replacer) VisitClass(c *Class) (Type, error) { return c, nil }

func (r replacer) VisitParameterized(p *Parameterized) (Type, error) {
	return rebuildParameterized(r, p)
}

func (r replacer) VisitGenericArray(a *GenericArray) (Type, error) {
	return rebuildGenericArray(r, a)
}

func (r replacer) VisitWildcard(w *Wildcard) (Type, error) {
	return rebuildWildcard(r, w)
}

func (r replacer) VisitTypeVar(v *TypeVar) (Type, error) {
	if replacement, ok := r.replacements.Get(v); ok {
		return replacement, nil
	}
	return v, nil
}

// remover keeps the variables on the path from the root of the expression, so that
// a variable bounded by itself stops the recursion
type remover struct {
	visited immutable.Set[VarKey]
}

func (r remover) VisitClass(c *Class) (Type, error) { return c, nil }

func (r remover) VisitParameterized(p *Parameterized) (Type, error) {
	return rebuildParameterized(r, p)
}

func (r remover) VisitGenericArray(a *GenericArray) (Type, error) {
	return rebuildGenericArray(r, a)
}

// VisitWildcard drops lower bounds which became wildcards, and replaces upper bounds
// which became wildcards by their own upper bounds
func (r remover) VisitWildcard(w *Wildcard) (Type, error) {
	var lower []Type
	for _, bound := range w.lower {
		removed, _ := Accept[Type](r, bound)
		if _, isWildcard := removed.(*Wildcard); !isWildcard {
			lower = append(lower, removed)
		}
	}
	return NewWildcard(lower, r.upperBounds(w.upper)), nil
}

func (r remover) VisitTypeVar(v *TypeVar) (Type, error) {
	key := v.Key()
	if r.visited.Has(key) {
		return Unbounded, nil
	}
	inner := remover{visited: r.visited.Add(key)}
	return NewWildcard(nil, inner.upperBounds(v.Bounds())), nil
}

func (r remover) upperBounds(bounds []Type) []Type {
	var upper []Type
	for _, bound := range bounds {
		removed, _ := Accept[Type](r, bound)
		if wildcard, isWildcard := removed.(*Wildcard); isWildcard {
			upper = append(upper, wildcard.upper...)
			continue
		}
		upper = append(upper, removed)
	}
	return upper
}

type varKeyHasher struct{}

func (varKeyHasher) Hash(key VarKey) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key.String()))
	return h.Sum32()
}

func (varKeyHasher) Equal(a, b VarKey) bool { return a == b }
