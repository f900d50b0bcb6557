package types

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type Kind uint8

const (
	_ Kind = iota
	KindClass
	KindInterface
	KindAnnotation
	KindPrimitive
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindAnnotation:
		return "annotation"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// LangPackage is the package of Object
var LangPackage = NewPackage("java.lang")

// Object is the universal top type: the superclass of every class, the default
// bound of type variables and the default upper bound of wildcards
var Object = &Class{
	name:   "java.lang.Object",
	kind:   KindClass,
	pkg:    LangPackage,
	sealed: true,
}

// Class is a nominal class reference: a declared class, interface, primitive or
// array class. Two references are equal only if they are the same declaration.
//
// A Class is built with NewClass and the Add*/Set* methods, then sealed. Sealed
// classes cannot change, with the exception of the lazily created ArrayClass.
type Class struct {
	name         string
	kind         Kind
	pkg          *Package
	component    *Class
	super        Type
	interfaces   []Type
	typeParams   []*TypeVar
	fields       []*Field
	methods      []*Method
	constructors []*Constructor
	annotations  []Annotation
	sealed       bool

	arrayOnce sync.Once
	array     *Class
}

// NewClass declares a class by its qualified name. Array classes are not declared,
// see ArrayClass.
func NewClass(name string, kind Kind) *Class {
	if kind == KindArray {
		panic("array classes are obtained with ArrayClass")
	}
	return &Class{name: name, kind: kind}
}

func (*Class) isType()             {}
func (*Class) genericDeclaration() {}
func (c *Class) isSealed() bool    { return c.sealed }

func (c *Class) mustBeOpen() {
	if c.sealed {
		panic(fmt.Sprintf("%s is sealed", c.name))
	}
}

func (c *Class) SetPackage(p *Package) *Class {
	c.mustBeOpen()
	c.pkg = p
	return c
}

// AddTypeParam declares the next type parameter of c
func (c *Class) AddTypeParam(name string, bounds ...Type) *TypeVar {
	c.mustBeOpen()
	v := NewTypeVar(name, c, bounds...)
	c.typeParams = append(c.typeParams, v)
	return v
}

// SetSuper sets the generic superclass, a *Class or a *Parameterized
func (c *Class) SetSuper(super Type) *Class {
	c.mustBeOpen()
	c.super = super
	return c
}

// AddInterface appends directly implemented (or, for interfaces, extended) generic interfaces
func (c *Class) AddInterface(interfaces ...Type) *Class {
	c.mustBeOpen()
	c.interfaces = append(c.interfaces, interfaces...)
	return c
}

func (c *Class) Annotate(annotations ...Annotation) *Class {
	c.mustBeOpen()
	c.annotations = append(c.annotations, annotations...)
	return c
}

// Seal freezes c and its members. Classes other than Object without an explicit
// superclass extend Object.
func (c *Class) Seal() *Class {
	if c.sealed {
		return c
	}
	if c.kind == KindClass && c.super == nil {
		c.super = Object
	}
	c.sealed = true
	return c
}

func (c *Class) Name() string { return c.name }

// SimpleName is the name without its package qualifier
func (c *Class) SimpleName() string {
	if i := strings.LastIndexByte(c.name, '.'); i >= 0 && c.kind != KindArray {
		return c.name[i+1:]
	}
	return c.name
}

func (c *Class) String() string            { return c.name }
func (c *Class) Kind() Kind                { return c.kind }
func (c *Class) Package() *Package         { return c.pkg }
func (c *Class) IsArray() bool             { return c.kind == KindArray }
func (c *Class) IsPrimitive() bool         { return c.kind == KindPrimitive }
func (c *Class) IsInterface() bool         { return c.kind == KindInterface || c.kind == KindAnnotation }
func (c *Class) IsGeneric() bool           { return len(c.typeParams) > 0 }
func (c *Class) Component() *Class         { return c.component }
func (c *Class) Super() Type               { return c.super }
func (c *Class) Interfaces() []Type        { return slices.Clone(c.interfaces) }
func (c *Class) TypeParams() []*TypeVar    { return slices.Clone(c.typeParams) }
func (c *Class) Annotations() []Annotation { return slices.Clone(c.annotations) }
func (c *Class) Fields() []*Field          { return slices.Clone(c.fields) }
func (c *Class) Methods() []*Method        { return slices.Clone(c.methods) }

func (c *Class) Constructors() []*Constructor { return slices.Clone(c.constructors) }

func (c *Class) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Class"))
	_, _ = h.Write([]byte(c.name))
	return h.Sum64()
}

func (c *Class) Equal(other Type) bool {
	that, ok := other.(*Class)
	return ok && c == that
}

// ArrayClass returns the class of arrays of c. It is created once per class, so
// array classes of the same component are equal.
func (c *Class) ArrayClass() *Class {
	c.arrayOnce.Do(func() {
		c.array = &Class{
			name:      c.name + "[]",
			kind:      KindArray,
			component: c,
			super:     Object,
			sealed:    true,
		}
	})
	return c.array
}

// Rank is the number of array dimensions of c
func (c *Class) Rank() int {
	rank := 0
	for k := c; k.IsArray(); k = k.component {
		rank++
	}
	return rank
}

// IsAssignableFrom is the nominal subtype check: whether a value of class o can be
// stored where c is expected, ignoring generics. Primitives are only assignable
// from themselves.
func (c *Class) IsAssignableFrom(o *Class) bool {
	switch {
	case c == o:
		return true
	case c.IsPrimitive() || o.IsPrimitive():
		return false
	case c == Object:
		return true
	case c.IsArray():
		return o.IsArray() && c.component.IsAssignableFrom(o.component)
	case o.IsArray():
		return false
	}
	return c.isSupertypeOf(o)
}

func (c *Class) isSupertypeOf(o *Class) bool {
	for _, direct := range o.directSupertypes() {
		if direct == c || c.isSupertypeOf(direct) {
			return true
		}
	}
	return false
}

func (c *Class) directSupertypes() []*Class {
	supers := make([]*Class, 0, len(c.interfaces)+1)
	if c.super != nil {
		supers = append(supers, Raw(c.super))
	}
	for _, iface := range c.interfaces {
		supers = append(supers, Raw(iface))
	}
	return supers
}

// ArrayOf returns the array type of the given rank over component. Arrays of classes
// are classes, anything else nests *GenericArray.
func ArrayOf(component Type, rank int) (Type, error) {
	if rank < 0 {
		return nil, errors.WithStack(&InvalidRankError{Rank: rank})
	}
	if rank == 0 {
		return component, nil
	}
	if class, ok := component.(*Class); ok {
		for ; rank > 0; rank-- {
			class = class.ArrayClass()
		}
		return class, nil
	}
	return ArrayOf(NewGenericArray(component), rank-1)
}

// Package groups classes and may carry annotations
type Package struct {
	name        string
	annotations []Annotation
}

func NewPackage(name string, annotations ...Annotation) *Package {
	return &Package{name: name, annotations: slices.Clone(annotations)}
}

func (p *Package) Name() string              { return p.name }
func (p *Package) String() string            { return "package " + p.name }
func (p *Package) Annotations() []Annotation { return slices.Clone(p.annotations) }

// Annotation is an instance of an annotation class attached to an element
type Annotation struct {
	Type  *Class
	Value string
}

func (a Annotation) String() string {
	if a.Value == "" {
		return "@" + a.Type.SimpleName()
	}
	return "@" + a.Type.SimpleName() + "(" + a.Value + ")"
}
