package types

// rawResolver erases a type expression to its class
type rawResolver struct{}

func (r rawResolver) VisitClass(c *Class) (*Class, error) { return c, nil }

func (r rawResolver) VisitParameterized(p *Parameterized) (*Class, error) {
	return p.raw, nil
}

func (r rawResolver) VisitGenericArray(a *GenericArray) (*Class, error) {
	component, err := Accept[*Class](r, a.component)
	if err != nil {
		return nil, err
	}
	return component.ArrayClass(), nil
}

func (r rawResolver) VisitWildcard(w *Wildcard) (*Class, error) {
	return Accept[*Class](r, w.UpperBounds()[0])
}

func (r rawResolver) VisitTypeVar(v *TypeVar) (*Class, error) {
	return Accept[*Class](r, v.Bounds()[0])
}

// Raw returns the erasure of t: the class left after discarding all generic information.
// Wildcards and type variables erase to their first upper bound.
func Raw(t Type) *Class {
	c, _ := Accept[*Class](rawResolver{}, t)
	return c
}
