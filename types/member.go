package types

import (
	"fmt"
	"slices"
	"strings"
)

// Element is anything that can carry annotations
type Element interface {
	fmt.Stringer
	Annotations() []Annotation
}

// Member is a field, method or constructor of a class
type Member interface {
	Element
	Name() string
	DeclaringClass() *Class
	isMember()
}

// Executable is a method or a constructor
type Executable interface {
	Member
	GenericDeclaration
	Params() []*Parameter
}

var (
	_ Element = (*Class)(nil)
	_ Element = (*Package)(nil)
	_ Element = (*Parameter)(nil)

	_ Member = (*Field)(nil)

	_ Executable = (*Method)(nil)
	_ Executable = (*Constructor)(nil)
)

type Field struct {
	name        string
	declaring   *Class
	typ         Type
	annotations []Annotation
}

// AddField declares a field of generic type t on c
func (c *Class) AddField(name string, t Type, annotations ...Annotation) *Field {
	c.mustBeOpen()
	f := &Field{name: name, declaring: c, typ: t, annotations: slices.Clone(annotations)}
	c.fields = append(c.fields, f)
	return f
}

func (*Field) isMember()                     {}
func (f *Field) Name() string                { return f.name }
func (f *Field) DeclaringClass() *Class      { return f.declaring }
func (f *Field) Type() Type                  { return f.typ }
func (f *Field) Annotations() []Annotation   { return slices.Clone(f.annotations) }
func (f *Field) String() string              { return f.declaring.name + "." + f.name }

// signature is what methods and constructors have in common
type signature struct {
	name        string
	declaring   *Class
	typeParams  []*TypeVar
	params      []*Parameter
	annotations []Annotation
}

func (s *signature) paramTypes() []Type {
	types := make([]Type, 0, len(s.params))
	for _, p := range s.params {
		types = append(types, p.typ)
	}
	return types
}

func (s *signature) matches(raws []*Class) bool {
	return slices.EqualFunc(s.params, raws, func(p *Parameter, raw *Class) bool {
		return Raw(p.typ) == raw
	})
}

func (s *signature) render(owner string) string {
	params := make([]string, 0, len(s.params))
	for _, p := range s.params {
		params = append(params, p.typ.String())
	}
	return owner + "(" + strings.Join(params, ", ") + ")"
}

type Method struct {
	signature
	returns Type
}

// AddMethod declares a method on c. Its type parameters, parameters and return type
// are declared on the result before c is sealed.
func (c *Class) AddMethod(name string) *Method {
	c.mustBeOpen()
	m := &Method{signature: signature{name: name, declaring: c}}
	c.methods = append(c.methods, m)
	return m
}

func (*Method) isMember()                   {}
func (*Method) genericDeclaration()         {}
func (m *Method) isSealed() bool            { return m.declaring.sealed }
func (m *Method) Name() string              { return m.name }
func (m *Method) DeclaringClass() *Class    { return m.declaring }
func (m *Method) TypeParams() []*TypeVar    { return slices.Clone(m.typeParams) }
func (m *Method) Params() []*Parameter      { return slices.Clone(m.params) }
func (m *Method) ParamTypes() []Type        { return m.paramTypes() }
func (m *Method) Annotations() []Annotation { return slices.Clone(m.annotations) }

// Return is the generic return type, nil for void methods
func (m *Method) Return() Type { return m.returns }

func (m *Method) String() string { return m.render(m.declaring.name + "." + m.name) }

func (m *Method) AddTypeParam(name string, bounds ...Type) *TypeVar {
	m.declaring.mustBeOpen()
	v := NewTypeVar(name, m, bounds...)
	m.typeParams = append(m.typeParams, v)
	return v
}

func (m *Method) AddParam(t Type, annotations ...Annotation) *Parameter {
	m.declaring.mustBeOpen()
	p := &Parameter{index: len(m.params), exec: m, typ: t, annotations: slices.Clone(annotations)}
	m.params = append(m.params, p)
	return p
}

func (m *Method) SetReturn(t Type) *Method {
	m.declaring.mustBeOpen()
	m.returns = t
	return m
}

func (m *Method) Annotate(annotations ...Annotation) *Method {
	m.declaring.mustBeOpen()
	m.annotations = append(m.annotations, annotations...)
	return m
}

type Constructor struct {
	signature
}

func (c *Class) AddConstructor() *Constructor {
	c.mustBeOpen()
	ctor := &Constructor{signature: signature{name: "<init>", declaring: c}}
	c.constructors = append(c.constructors, ctor)
	return ctor
}

func (*Constructor) isMember()                   {}
func (*Constructor) genericDeclaration()         {}
func (c *Constructor) isSealed() bool            { return c.declaring.sealed }
func (c *Constructor) Name() string              { return c.name }
func (c *Constructor) DeclaringClass() *Class    { return c.declaring }
func (c *Constructor) TypeParams() []*TypeVar    { return slices.Clone(c.typeParams) }
func (c *Constructor) Params() []*Parameter      { return slices.Clone(c.params) }
func (c *Constructor) ParamTypes() []Type        { return c.paramTypes() }
func (c *Constructor) Annotations() []Annotation { return slices.Clone(c.annotations) }
func (c *Constructor) String() string            { return c.render(c.declaring.name) }

func (c *Constructor) AddTypeParam(name string, bounds ...Type) *TypeVar {
	c.declaring.mustBeOpen()
	v := NewTypeVar(name, c, bounds...)
	c.typeParams = append(c.typeParams, v)
	return v
}

func (c *Constructor) AddParam(t Type, annotations ...Annotation) *Parameter {
	c.declaring.mustBeOpen()
	p := &Parameter{index: len(c.params), exec: c, typ: t, annotations: slices.Clone(annotations)}
	c.params = append(c.params, p)
	return p
}

func (c *Constructor) Annotate(annotations ...Annotation) *Constructor {
	c.declaring.mustBeOpen()
	c.annotations = append(c.annotations, annotations...)
	return c
}

// Parameter is a formal parameter of a method or constructor
type Parameter struct {
	index       int
	exec        Executable
	typ         Type
	annotations []Annotation
}

func (p *Parameter) Index() int                { return p.index }
func (p *Parameter) Executable() Executable    { return p.exec }
func (p *Parameter) Type() Type                { return p.typ }
func (p *Parameter) Annotations() []Annotation { return slices.Clone(p.annotations) }
func (p *Parameter) String() string            { return fmt.Sprintf("%s#%d", p.exec, p.index) }

// Method finds a method of c or of its supertypes by name and raw parameter classes
func (c *Class) Method(name string, params ...*Class) (*Method, error) {
	if m := c.findMethod(name, params); m != nil {
		return m, nil
	}
	return nil, notFound(c, "method %s%v", name, params)
}

func (c *Class) findMethod(name string, params []*Class) *Method {
	for _, m := range c.methods {
		if m.name == name && m.matches(params) {
			return m
		}
	}
	for _, super := range c.directSupertypes() {
		if m := super.findMethod(name, params); m != nil {
			return m
		}
	}
	return nil
}

// Constructor finds a constructor declared on c by its raw parameter classes
func (c *Class) Constructor(params ...*Class) (*Constructor, error) {
	for _, ctor := range c.constructors {
		if ctor.matches(params) {
			return ctor, nil
		}
	}
	return nil, notFound(c, "constructor %v", params)
}

// Field finds a field of c or of its supertypes
func (c *Class) Field(name string) (*Field, error) {
	for k := c; k != nil; {
		for _, f := range k.fields {
			if f.name == name {
				return f, nil
			}
		}
		if k.super == nil {
			break
		}
		k = Raw(k.super)
	}
	return nil, notFound(c, "field %s", name)
}

func ClassTypeVariable(name string, c *Class) (*TypeVar, error) {
	return findTypeVariable(name, c)
}

func MethodTypeVariable(name string, c *Class, method string, params ...*Class) (*TypeVar, error) {
	m, err := c.Method(method, params...)
	if err != nil {
		return nil, err
	}
	return findTypeVariable(name, m)
}

func ConstructorTypeVariable(name string, c *Class, params ...*Class) (*TypeVar, error) {
	ctor, err := c.Constructor(params...)
	if err != nil {
		return nil, err
	}
	return findTypeVariable(name, ctor)
}

func findTypeVariable(name string, decl GenericDeclaration) (*TypeVar, error) {
	for _, v := range decl.TypeParams() {
		if v.name == name {
			return v, nil
		}
	}
	return nil, notFound(decl, "type variable '%s'", name)
}

// memberTypeExtractor yields the type a member produces: the generic type of a field,
// the generic return type of a method, the declaring class of a constructor
type memberTypeExtractor struct{}

func (memberTypeExtractor) VisitField(f *Field) (Type, error)   { return f.typ, nil }
func (memberTypeExtractor) VisitMethod(m *Method) (Type, error) { return m.returns, nil }
func (memberTypeExtractor) VisitConstructor(c *Constructor) (Type, error) {
	return c.declaring, nil
}

func MemberType(m Member) Type {
	t, _ := AcceptMember[Type](memberTypeExtractor{}, m)
	return t
}
