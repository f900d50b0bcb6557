// Package registry holds the host classes type expressions are built from, and the
// builtin declarations of the java.lang, java.io and java.util packages.
package registry

import (
	"iter"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/tyra/internal/log"
	"github.com/cottand/tyra/types"
	"github.com/pkg/errors"
	"github.com/xtgo/set"
)

var logger = log.Section("registry")

// Universe is an immutable set of classes indexed by qualified name. Adding
// classes returns a new Universe sharing structure with the old one.
type Universe struct {
	classes *immutable.SortedMap[string, *types.Class]
}

func New(classes ...*types.Class) *Universe {
	u := &Universe{classes: immutable.NewSortedMap[string, *types.Class](immutable.NewComparer(""))}
	return u.With(classes...)
}

var standard = New(builtins()...)

// Standard is the Universe of builtin classes
func Standard() *Universe {
	return standard
}

// With returns u with classes added, replacing classes of the same name
func (u *Universe) With(classes ...*types.Class) *Universe {
	m := u.classes
	for _, c := range classes {
		if _, exists := m.Get(c.Name()); exists {
			logger.Debug("replacing class", "class", c)
		}
		m = m.Set(c.Name(), c)
	}
	return &Universe{classes: m}
}

func (u *Universe) Len() int { return u.classes.Len() }

// Classes iterates over the classes of u sorted by name
func (u *Universe) Classes() iter.Seq[*types.Class] {
	return func(yield func(*types.Class) bool) {
		it := u.classes.Iterator()
		for !it.Done() {
			_, c, _ := it.Next()
			if !yield(c) {
				return
			}
		}
	}
}

// Lookup finds a class by qualified name. Classes of java.lang can also be found by
// their simple name, and every trailing `[]` denotes one array dimension.
func (u *Universe) Lookup(name string) (*types.Class, error) {
	name = strings.TrimSpace(name)
	rank := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSpace(strings.TrimSuffix(name, "[]"))
		rank++
	}
	c, ok := u.classes.Get(name)
	if !ok && !strings.Contains(name, ".") {
		c, ok = u.classes.Get(types.LangPackage.Name() + "." + name)
	}
	if !ok {
		return nil, errors.WithStack(&types.NotFoundError{What: "class " + name})
	}
	for ; rank > 0; rank-- {
		c = c.ArrayClass()
	}
	return c, nil
}

// Packages lists the distinct package names of the classes of u, sorted
func (u *Universe) Packages() []string {
	var names []string
	for c := range u.Classes() {
		if pkg := c.Package(); pkg != nil {
			names = append(names, pkg.Name())
		}
	}
	sort.Strings(names)
	return names[:set.Uniq(sort.StringSlice(names))]
}
