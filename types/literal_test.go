package types_test

import (
	"testing"

	"github.com/cottand/tyra/registry"
	"github.com/cottand/tyra/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralOf(t *testing.T) {
	// new TypeLiteral<Map<? super Number[], Set<? extends CharSequence>[]>>() {}
	captured := of(registry.Map,
		types.Super(registry.Number.ArrayClass()),
		types.NewGenericArray(of(registry.Set, types.Extends(registry.CharSequence))),
	)
	anonymous := types.NewClass("com.example.Anonymous$1", types.KindClass).
		SetSuper(of(types.TypeLiteral, captured)).
		Seal()

	literal, err := types.LiteralOf(anonymous)
	require.NoError(t, err)
	assert.True(t, types.Equal(captured, literal))
	assert.Equal(t, captured.Hash(), literal.Hash())
	assert.Equal(t, "java.util.Map<? super java.lang.Number[], java.util.Set<? extends java.lang.CharSequence>[]>", literal.String())
}

func TestLiteralOfIntermediate(t *testing.T) {
	// class ListLiteral<E> extends TypeLiteral<List<E>>
	listLiteral := types.NewClass("com.example.ListLiteral", types.KindClass)
	e := listLiteral.AddTypeParam("E")
	listLiteral.SetSuper(of(types.TypeLiteral, of(registry.List, e)))
	listLiteral.Seal()

	strings := types.NewClass("com.example.Strings", types.KindClass).
		SetSuper(of(listLiteral, registry.String)).
		Seal()

	literal, err := types.LiteralOf(strings)
	require.NoError(t, err)
	assert.Equal(t, "java.util.List<E>", literal.String())

	expanded, err := types.Expand(literal, strings)
	require.NoError(t, err)
	assert.Equal(t, "java.util.List<java.lang.String>", expanded.String())
}

func TestLiteralOfUnresolved(t *testing.T) {
	// class Forwarding<T> extends TypeLiteral<T>
	forwarding := types.NewClass("com.example.Forwarding", types.KindClass)
	v := forwarding.AddTypeParam("T")
	forwarding.SetSuper(of(types.TypeLiteral, v))
	forwarding.Seal()

	literal, err := types.LiteralOf(forwarding)
	require.NoError(t, err)
	assert.True(t, literal.Equal(v))

	_, err = types.LiteralOf(types.TypeLiteral)
	var unresolved *types.UnresolvedLiteralError
	require.ErrorAs(t, err, &unresolved)
	assert.Contains(t, types.FormatWithCode(err), "(E007)")

	_, err = types.LiteralOf(registry.String)
	var unrelated *types.UnrelatedTypesError
	assert.ErrorAs(t, err, &unrelated)
}
