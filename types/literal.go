package types

import (
	"github.com/pkg/errors"
)

// TypeLiteral captures a type expression in the declaration of a subclass, the way
// `new TypeLiteral<List<String>>() {}` would: LiteralOf of that subclass is
// List<String>.
var TypeLiteral = func() *Class {
	literal := NewClass("tyra.TypeLiteral", KindClass).SetPackage(NewPackage("tyra"))
	literal.AddTypeParam("T")
	return literal.Seal()
}()

// LiteralOf returns the argument c supplies to TypeLiteral
func LiteralOf(c *Class) (Type, error) {
	args, err := ResolveArguments(c, TypeLiteral)
	if err != nil {
		return nil, err
	}
	if v, ok := args[0].(*TypeVar); ok && v.decl == GenericDeclaration(TypeLiteral) {
		return nil, errors.WithStack(&UnresolvedLiteralError{Class: c})
	}
	return args[0], nil
}

type componentResolver struct {
	Unsupported[Type]
}

func (r componentResolver) VisitClass(c *Class) (Type, error) {
	if !c.IsArray() {
		return r.Unsupported.VisitClass(c)
	}
	return c.component, nil
}

func (componentResolver) VisitGenericArray(a *GenericArray) (Type, error) {
	return a.component, nil
}

// ComponentType returns the element type of an array type, array class or generic
// array, and fails with an UnsupportedVariantError for anything else
func ComponentType(t Type) (Type, error) {
	return Accept[Type](componentResolver{Unsupported[Type]{Name: "component type"}}, t)
}
