package types

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
)

// Type is a type expression. The set of variants is closed: *Class, *Parameterized,
// *GenericArray, *Wildcard and *TypeVar. Every consumer dispatches over exactly these
// through Accept.
//
// Type expressions are immutable once their declarations are sealed and may be
// shared freely between goroutines.
type Type interface {
	fmt.Stringer
	Hash() uint64
	// Equal is structural equality, except for *Class (declaration identity)
	// and *TypeVar (name and declaring context)
	Equal(other Type) bool
	isType()
}

var (
	_ Type = (*Class)(nil)
	_ Type = (*Parameterized)(nil)
	_ Type = (*GenericArray)(nil)
	_ Type = (*Wildcard)(nil)
	_ Type = (*TypeVar)(nil)

	_ GenericDeclaration = (*Class)(nil)
	_ GenericDeclaration = (*Method)(nil)
	_ GenericDeclaration = (*Constructor)(nil)
)

// Equal compares two possibly nil type expressions
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func equalAll(a, b []Type) bool {
	return slices.EqualFunc(a, b, Equal)
}

func hashOf(tag string, hashes ...uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	arr := make([]byte, 0, 8*len(hashes))
	for _, hash := range hashes {
		arr = binary.LittleEndian.AppendUint64(arr, hash)
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func hashAll(ts []Type) []uint64 {
	hashes := make([]uint64, 0, len(ts)+1)
	hashes = append(hashes, uint64(len(ts)))
	for _, t := range ts {
		if t == nil {
			hashes = append(hashes, 1)
			continue
		}
		hashes = append(hashes, t.Hash())
	}
	return hashes
}

func joinTypes(ts []Type, sep string) string {
	strs := make([]string, 0, len(ts))
	for _, t := range ts {
		strs = append(strs, t.String())
	}
	return strings.Join(strs, sep)
}

// Parameterized is a generic class instantiated with actual type arguments, like List<String>
type Parameterized struct {
	raw   *Class
	owner Type
	args  []Type
}

// NewParameterized does not check the number of arguments against the declared
// arity of raw: malformed instantiations are reported by the algorithms consuming them.
func NewParameterized(raw *Class, owner Type, args ...Type) *Parameterized {
	if raw == nil {
		panic("parameterized type without raw type")
	}
	return &Parameterized{
		raw:   raw,
		owner: owner,
		args:  slices.Clone(args),
	}
}

// AsParameterized returns c parameterized with its own type parameters, or c itself
// when it is not generic
func AsParameterized(c *Class) Type {
	if len(c.typeParams) == 0 {
		return c
	}
	args := make([]Type, len(c.typeParams))
	for i, param := range c.typeParams {
		args[i] = param
	}
	return NewParameterized(c, nil, args...)
}

func (*Parameterized) isType()          {}
func (p *Parameterized) Raw() *Class    { return p.raw }
func (p *Parameterized) Owner() Type    { return p.owner }
func (p *Parameterized) Args() []Type   { return slices.Clone(p.args) }
func (p *Parameterized) Arg(i int) Type { return p.args[i] }
func (p *Parameterized) NumArgs() int   { return len(p.args) }

func (p *Parameterized) String() string {
	if len(p.args) == 0 {
		return p.raw.String()
	}
	return p.raw.String() + "<" + joinTypes(p.args, ", ") + ">"
}

func (p *Parameterized) Hash() uint64 {
	ownerHash := uint64(0)
	if p.owner != nil {
		ownerHash = p.owner.Hash()
	}
	return hashOf("Parameterized", append([]uint64{p.raw.Hash(), ownerHash}, hashAll(p.args)...)...)
}

func (p *Parameterized) Equal(other Type) bool {
	that, ok := other.(*Parameterized)
	if !ok {
		return false
	}
	return p == that || p.raw == that.raw && Equal(p.owner, that.owner) && equalAll(p.args, that.args)
}

// GenericArray is an array whose component is a type variable or a parameterized type.
// Arrays of plain classes are classes themselves, see Class.ArrayClass.
type GenericArray struct {
	component Type
}

func NewGenericArray(component Type) *GenericArray {
	if component == nil {
		panic("generic array without component type")
	}
	return &GenericArray{component: component}
}

func (*GenericArray) isType()           {}
func (a *GenericArray) Component() Type { return a.component }
func (a *GenericArray) String() string  { return a.component.String() + "[]" }
func (a *GenericArray) Hash() uint64    { return hashOf("GenericArray", a.component.Hash()) }

func (a *GenericArray) Equal(o Type) bool {
	that, ok := o.(*GenericArray)
	return ok && (a == that || a.component.Equal(that.component))
}

// Wildcard is the bounded unknown of a type argument, like `? extends Number`.
//
// An empty upper bound list is the same as a single Object upper bound.
type Wildcard struct {
	lower []Type
	upper []Type
}

// Unbounded is `?`
var Unbounded = NewWildcard(nil, nil)

func NewWildcard(lower, upper []Type) *Wildcard {
	return &Wildcard{
		lower: slices.Clone(lower),
		upper: slices.Clone(upper),
	}
}

// Extends returns `? extends bounds`
func Extends(bounds ...Type) *Wildcard { return NewWildcard(nil, bounds) }

// Super returns `? super bounds`
func Super(bounds ...Type) *Wildcard { return NewWildcard(bounds, nil) }

func (*Wildcard) isType() {}

// LowerBounds must not be modified
func (w *Wildcard) LowerBounds() []Type { return w.lower }

// UpperBounds is never empty and must not be modified
func (w *Wildcard) UpperBounds() []Type {
	if len(w.upper) == 0 {
		return []Type{Object}
	}
	return w.upper
}

// Canonical makes the default Object upper bound explicit
func (w *Wildcard) Canonical() *Wildcard {
	return &Wildcard{lower: w.lower, upper: w.UpperBounds()}
}

func (w *Wildcard) String() string {
	sb := strings.Builder{}
	sb.WriteString("?")
	if len(w.lower) > 0 {
		sb.WriteString(" super ")
		sb.WriteString(joinTypes(w.lower, ", "))
	}
	if len(w.upper) > 0 && !(len(w.upper) == 1 && w.upper[0] == Object) {
		sb.WriteString(" extends ")
		sb.WriteString(joinTypes(w.upper, ", "))
	}
	return sb.String()
}

func (w *Wildcard) Hash() uint64 {
	lower := hashAll(w.lower)
	upper := hashAll(w.UpperBounds())
	return hashOf("Wildcard", append(lower, upper...)...)
}

func (w *Wildcard) Equal(other Type) bool {
	that, ok := other.(*Wildcard)
	if !ok {
		return false
	}
	return w == that || equalAll(w.lower, that.lower) && equalAll(w.UpperBounds(), that.UpperBounds())
}

// GenericDeclaration is something that declares type parameters: a *Class,
// a *Method or a *Constructor
type GenericDeclaration interface {
	fmt.Stringer
	TypeParams() []*TypeVar
	isSealed() bool
	genericDeclaration()
}

// VarKey identifies a type variable. Two declarations may reuse a parameter name,
// so the declaring context is part of the identity.
type VarKey struct {
	Name string
	Decl GenericDeclaration
}

func (k VarKey) String() string {
	if k.Decl == nil {
		return k.Name
	}
	return k.Decl.String() + "." + k.Name
}

// TypeVar is a type parameter of a generic declaration
type TypeVar struct {
	name   string
	decl   GenericDeclaration
	bounds []Type
}

// NewTypeVar creates a variable which is not listed among the type parameters of decl.
// Declarations create theirs with AddTypeParam.
func NewTypeVar(name string, decl GenericDeclaration, bounds ...Type) *TypeVar {
	return &TypeVar{name: name, decl: decl, bounds: slices.Clone(bounds)}
}

func (*TypeVar) isType()                    {}
func (v *TypeVar) Name() string             { return v.name }
func (v *TypeVar) Decl() GenericDeclaration { return v.decl }
func (v *TypeVar) Key() VarKey              { return VarKey{Name: v.name, Decl: v.decl} }
func (v *TypeVar) String() string           { return v.name }

// Bounds is never empty and must not be modified
func (v *TypeVar) Bounds() []Type {
	if len(v.bounds) == 0 {
		return []Type{Object}
	}
	return v.bounds
}

// SetBounds is only allowed while the declaring context is not sealed, so that
// variables can be bounded by types mentioning themselves, like `T extends Comparable<T>`
func (v *TypeVar) SetBounds(bounds ...Type) *TypeVar {
	if v.decl != nil && v.decl.isSealed() {
		panic(fmt.Sprintf("cannot bound %s: %s is sealed", v.name, v.decl))
	}
	v.bounds = slices.Clone(bounds)
	return v
}

func (v *TypeVar) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("TypeVar"))
	_, _ = h.Write([]byte(v.name))
	if v.decl != nil {
		_, _ = h.Write([]byte(v.decl.String()))
	}
	return h.Sum64()
}

func (v *TypeVar) Equal(other Type) bool {
	that, ok := other.(*TypeVar)
	return ok && v.Key() == that.Key()
}
