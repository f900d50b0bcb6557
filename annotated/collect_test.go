package annotated_test

import (
	"testing"

	"github.com/cottand/tyra/annotated"
	"github.com/cottand/tyra/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	marker = types.NewClass("com.example.Marker", types.KindAnnotation).Seal()
	other  = types.NewClass("com.example.Other", types.KindAnnotation).Seal()
)

func mark(value string) types.Annotation {
	return types.Annotation{Type: marker, Value: value}
}

type fixture struct {
	service  *types.Class
	impl     *types.Class
	value    *types.Class
	run      *types.Method
	ctor     *types.Constructor
	field    *types.Field
	argument *types.Parameter
}

func newFixture() fixture {
	pkg := types.NewPackage("com.example", mark("package"))

	value := types.NewClass("com.example.Value", types.KindClass).
		SetPackage(pkg).
		Annotate(mark("value")).
		Seal()

	service := types.NewClass("com.example.Service", types.KindInterface).
		SetPackage(pkg).
		Annotate(mark("service"), types.Annotation{Type: other}).
		Seal()

	base := types.NewClass("com.example.Base", types.KindClass).
		SetPackage(pkg).
		Annotate(mark("base")).
		Seal()

	impl := types.NewClass("com.example.Impl", types.KindClass).
		SetPackage(pkg).
		SetSuper(base).
		AddInterface(service).
		Annotate(mark("impl"))
	run := impl.AddMethod("run").SetReturn(value).Annotate(mark("run"))
	argument := run.AddParam(value, mark("argument"))
	ctor := impl.AddConstructor().Annotate(mark("ctor"))
	field := impl.AddField("cached", value, mark("field"))
	impl.Seal()

	return fixture{service, impl, value, run, ctor, field, argument}
}

func values(annotations []types.Annotation) []string {
	result := make([]string, 0, len(annotations))
	for _, a := range annotations {
		result = append(result, a.Value)
	}
	return result
}

func TestCollect(t *testing.T) {
	f := newFixture()
	testCases := []struct {
		name     string
		element  types.Element
		expected []string
	}{
		{"package", f.value.Package(), []string{"package"}},
		{"interface", f.service, []string{"service", "package"}},
		{"class", f.impl, []string{"impl", "service", "package", "base"}},
		{"constructor", f.ctor, []string{"ctor", "impl", "service", "package", "base"}},
		{"method", f.run, []string{"run", "impl", "service", "package", "base", "value"}},
		{"field", f.field, []string{"field", "impl", "service", "package", "base", "value"}},
		{"parameter", f.argument, []string{"argument", "run", "impl", "service", "package", "base", "value"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, values(annotated.Collect(tc.element, marker)))
		})
	}
}

func TestCollectFiltersByType(t *testing.T) {
	f := newFixture()
	found := annotated.Collect(f.impl, other)
	require.Len(t, found, 1)
	assert.Same(t, other, found[0].Type)
}

func TestCollectDeduplicates(t *testing.T) {
	shared := mark("shared")
	pkg := types.NewPackage("com.example.dup", shared)
	a := types.NewClass("com.example.dup.A", types.KindInterface).SetPackage(pkg).Annotate(shared).Seal()
	b := types.NewClass("com.example.dup.B", types.KindClass).SetPackage(pkg).AddInterface(a).Annotate(shared).Seal()

	assert.Equal(t, []string{"shared"}, values(annotated.Collect(b, marker)))
}

func TestCollectNothing(t *testing.T) {
	assert.Empty(t, annotated.Collect(types.Object, marker))
}
