package types_test

import (
	"testing"

	"github.com/cottand/tyra/registry"
	"github.com/cottand/tyra/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type converters struct {
	converter, toString, abstract, uuid *types.Class
	// <A, B, C extends AbstractToStringConverter<A, B>> void something(C converter, Consumer<? extends AbstractToStringConverter<A, B>> c)
	something *types.Method
}

func newConverters() converters {
	converter := types.NewClass("com.example.Converter", types.KindInterface)
	converter.AddTypeParam("From")
	converter.AddTypeParam("To")
	converter.Seal()

	toString := types.NewClass("com.example.ToStringConverter", types.KindInterface)
	x := toString.AddTypeParam("X")
	toString.AddInterface(registry.Serializable, of(converter, x, registry.String))
	toString.Seal()

	abstract := types.NewClass("com.example.AbstractToStringConverter", types.KindClass)
	abstract.AddTypeParam("NotUsed")
	z := abstract.AddTypeParam("Z")
	abstract.AddInterface(of(toString, z))
	abstract.Seal()

	uuid := types.NewClass("com.example.UUIDToStringConverter", types.KindClass).
		SetSuper(of(abstract, registry.Void, registry.UUID)).
		Seal()

	holder := types.NewClass("com.example.ConverterUser", types.KindClass)
	something := holder.AddMethod("something").SetReturn(registry.PrimitiveVoid)
	a := something.AddTypeParam("A")
	b := something.AddTypeParam("B")
	c := something.AddTypeParam("C", of(abstract, a, b))
	something.AddParam(c)
	something.AddParam(of(registry.Consumer, types.Extends(of(abstract, a, b))))
	holder.Seal()

	return converters{converter, toString, abstract, uuid, something}
}

func isVariable(name string) func(t *testing.T, actual types.Type) {
	return func(t *testing.T, actual types.Type) {
		v, ok := actual.(*types.TypeVar)
		if assert.True(t, ok, "%s is not a variable", actual) {
			assert.Equal(t, name, v.Name())
		}
	}
}

func is(expected types.Type) func(t *testing.T, actual types.Type) {
	return func(t *testing.T, actual types.Type) {
		assert.True(t, types.Equal(expected, actual), "expected %s but got %s", expected, actual)
	}
}

func TestFindParameterized(t *testing.T) {
	c := newConverters()
	params := c.something.ParamTypes()
	consumer := params[1].(*types.Parameterized)

	testCases := []struct {
		name string
		t    types.Type
		from func(*testing.T, types.Type)
		to   func(*testing.T, types.Type)
	}{
		{"itself", c.converter, isVariable("From"), isVariable("To")},
		{"interface", c.toString, isVariable("X"), is(registry.String)},
		{"abstract class", c.abstract, isVariable("Z"), is(registry.String)},
		{"concrete class", c.uuid, is(registry.UUID), is(registry.String)},
		{"method variable", params[0], isVariable("B"), is(registry.String)},
		{"wildcard", consumer.Arg(0), isVariable("B"), is(registry.String)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := types.FindParameterized(tc.t, c.converter)
			require.NoError(t, err)
			assert.Same(t, c.converter, found.Raw())
			require.Equal(t, 2, found.NumArgs())
			tc.from(t, found.Arg(0))
			tc.to(t, found.Arg(1))
		})
	}
}

func TestResolvedArgumentsRoundTrip(t *testing.T) {
	c := newConverters()
	testCases := []struct {
		name     string
		leaf     *types.Class
		ancestor *types.Class
	}{
		{"concrete class", c.uuid, c.converter},
		{"abstract class", c.abstract, c.converter},
		{"interface", c.toString, c.converter},
		{"through superclass", c.uuid, c.toString},
		{"generic leaf", registry.ArrayList, registry.Iterable},
		{"self referencing", registry.String, registry.Comparable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := types.ResolveArguments(tc.leaf, tc.ancestor)
			require.NoError(t, err)
			rebuilt := types.NewParameterized(tc.ancestor, nil, args...)

			declared, err := types.Expand(types.AsParameterized(tc.ancestor), tc.leaf)
			require.NoError(t, err)
			assert.True(t, types.IsAssignable(rebuilt, declared), "%s := %s", rebuilt, declared)
			assert.True(t, types.IsAssignable(declared, rebuilt), "%s := %s", declared, rebuilt)
			assert.True(t, types.IsAssignable(rebuilt, tc.leaf), "%s := %s", rebuilt, tc.leaf)
		})
	}
}

func TestResolveArgumentsThroughSuperclasses(t *testing.T) {
	args, err := types.ResolveArguments(of(registry.ArrayList, registry.UUID), registry.Iterable)
	require.NoError(t, err)
	assert.Equal(t, []types.Type{registry.UUID}, args)

	args, err = types.ResolveArguments(registry.Integer, registry.Comparable)
	require.NoError(t, err)
	assert.Equal(t, []types.Type{registry.Integer}, args)

	args, err = types.ResolveArguments(registry.String, registry.CharSequence)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestResolveArgumentsUnrelated(t *testing.T) {
	c := newConverters()
	testCases := []struct {
		name string
		t    types.Type
	}{
		{"class", registry.String},
		{"parameterized", of(registry.List, registry.String)},
		{"generic array", types.NewGenericArray(of(c.converter, registry.String, registry.String))},
		{"wildcard", types.Extends(registry.Number)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := types.ResolveArguments(tc.t, c.converter)
			var unrelated *types.UnrelatedTypesError
			require.ErrorAs(t, err, &unrelated)
			assert.Same(t, c.converter, unrelated.Reference)
			assert.Equal(t, types.UnrelatedTypes, unrelated.Code())
		})
	}
}

func TestResolveArgumentsArityMismatch(t *testing.T) {
	_, err := types.ResolveArguments(of(registry.HashMap, registry.String), registry.Map)
	var arity *types.ArityMismatchError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 2, arity.Want)
	assert.Equal(t, 1, arity.Got)
	assert.Contains(t, types.FormatWithCode(err), "(E002)")
}
