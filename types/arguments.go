package types

import (
	"slices"
)

// argumentsResolver reconstructs the type arguments reference would carry as a
// supertype of the visited type, walking the inheritance chain upwards and
// substituting variables on the way back down.
//
// For example, given
//
//	interface Converter<From, To>
//	interface ToStringConverter<X> extends Converter<X, String>
//	class UUIDToStringConverter implements ToStringConverter<UUID>
//
// the arguments of Converter for UUIDToStringConverter are (UUID, String), although
// Converter<UUID, String> is never written anywhere.
type argumentsResolver struct {
	reference *Class
}

func (r argumentsResolver) VisitClass(c *Class) ([]Type, error) {
	if c == r.reference {
		params := make([]Type, len(c.typeParams))
		for i, param := range c.typeParams {
			params[i] = param
		}
		return params, nil
	}
	if c.super != nil && r.reference.IsAssignableFrom(Raw(c.super)) {
		return Accept[[]Type](r, c.super)
	}
	for _, iface := range c.interfaces {
		if r.reference.IsAssignableFrom(Raw(iface)) {
			return Accept[[]Type](r, iface)
		}
	}
	return nil, unrelated(c, r.reference)
}

func (r argumentsResolver) VisitParameterized(p *Parameterized) ([]Type, error) {
	args, err := r.VisitClass(p.raw)
	if err != nil {
		return nil, err
	}
	if len(p.args) != len(p.raw.typeParams) {
		return nil, arityMismatch(p.raw, len(p.args))
	}
	// args are expressed in terms of the variables of p.raw: fill in p's actual arguments
	args = slices.Clone(args)
	for i, arg := range args {
		v, ok := arg.(*TypeVar)
		if !ok || v.decl != p.raw {
			continue
		}
		for j, param := range p.raw.typeParams {
			if param.name == v.name {
				args[i] = p.args[j]
				break
			}
		}
	}
	return args, nil
}

func (r argumentsResolver) VisitTypeVar(v *TypeVar) ([]Type, error) {
	return r.firstAssignable(v, v.Bounds())
}

func (r argumentsResolver) VisitWildcard(w *Wildcard) ([]Type, error) {
	return r.firstAssignable(w, w.UpperBounds())
}

func (r argumentsResolver) firstAssignable(t Type, bounds []Type) ([]Type, error) {
	for _, bound := range bounds {
		if IsAssignable(r.reference, bound) {
			return Accept[[]Type](r, bound)
		}
	}
	return nil, unrelated(t, r.reference)
}

func (r argumentsResolver) VisitGenericArray(a *GenericArray) ([]Type, error) {
	return nil, unrelated(a, r.reference)
}

// ResolveArguments returns the actual type arguments of reference as a supertype of t,
// one per type parameter of reference. Arguments which t leaves generic are returned
// as the variables standing for them.
//
// It fails with an UnrelatedTypesError if t is not a subtype of reference.
func ResolveArguments(t Type, reference *Class) ([]Type, error) {
	args, err := Accept[[]Type](argumentsResolver{reference: reference}, t)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved arguments", "type", t, "reference", reference, "args", args)
	return args, nil
}

// FindParameterized is ResolveArguments applied to reference
func FindParameterized(t Type, reference *Class) (*Parameterized, error) {
	args, err := ResolveArguments(t, reference)
	if err != nil {
		return nil, err
	}
	return NewParameterized(reference, nil, args...), nil
}
