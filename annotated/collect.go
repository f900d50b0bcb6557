// Package annotated finds the annotations which apply to an element through the
// declarations surrounding it.
package annotated

import (
	"github.com/cottand/tyra/internal/log"
	"github.com/cottand/tyra/types"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.Section("annotated")

// Collect returns the annotations of type annotationType found on element and on
// everything it refers to, transitively:
//   - a class: its interfaces, its package, its superclass
//   - a constructor: its declaring class
//   - a method: its declaring class, its raw return type
//   - a field: its declaring class, its raw type
//   - a parameter: its method or constructor, its raw type
//
// Each element is visited once. Annotations are returned without duplicates, in the
// order they were found.
func Collect(element types.Element, annotationType *types.Class) []types.Annotation {
	c := &collector{
		annotationType: annotationType,
		visited:        set.New[types.Element](8),
		seen:           set.New[types.Annotation](4),
	}
	found, _ := types.AcceptElement[[]types.Annotation](c, element)
	logger.Debug("collected annotations", "element", element, "type", annotationType, "found", len(found))
	return found
}

type collector struct {
	annotationType *types.Class
	visited        *set.Set[types.Element]
	seen           *set.Set[types.Annotation]
	found          []types.Annotation
}

var _ types.ElementVisitor[[]types.Annotation] = (*collector)(nil)

func (c *collector) add(element types.Element, next ...types.Element) ([]types.Annotation, error) {
	if !c.visited.Insert(element) {
		return c.found, nil
	}
	for _, annotation := range element.Annotations() {
		if annotation.Type == c.annotationType && c.seen.Insert(annotation) {
			c.found = append(c.found, annotation)
		}
	}
	for _, n := range next {
		if _, err := types.AcceptElement[[]types.Annotation](c, n); err != nil {
			return nil, err
		}
	}
	return c.found, nil
}

// classOf avoids typed nils for types which have no class to visit
func classOf(t types.Type) []types.Element {
	if t == nil {
		return nil
	}
	return []types.Element{types.Raw(t)}
}

func (c *collector) VisitClass(k *types.Class) ([]types.Annotation, error) {
	var next []types.Element
	for _, iface := range k.Interfaces() {
		next = append(next, classOf(iface)...)
	}
	if pkg := k.Package(); pkg != nil {
		next = append(next, pkg)
	}
	next = append(next, classOf(k.Super())...)
	return c.add(k, next...)
}

func (c *collector) VisitConstructor(ctor *types.Constructor) ([]types.Annotation, error) {
	return c.add(ctor, ctor.DeclaringClass())
}

func (c *collector) VisitMethod(m *types.Method) ([]types.Annotation, error) {
	return c.add(m, append([]types.Element{m.DeclaringClass()}, classOf(m.Return())...)...)
}

func (c *collector) VisitField(f *types.Field) ([]types.Annotation, error) {
	return c.add(f, append([]types.Element{f.DeclaringClass()}, classOf(f.Type())...)...)
}

func (c *collector) VisitParameter(p *types.Parameter) ([]types.Annotation, error) {
	return c.add(p, append([]types.Element{p.Executable()}, classOf(p.Type())...)...)
}

func (c *collector) VisitPackage(p *types.Package) ([]types.Annotation, error) {
	return c.add(p)
}
