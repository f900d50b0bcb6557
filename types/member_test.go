package types_test

import (
	"testing"

	"github.com/cottand/tyra/registry"
	"github.com/cottand/tyra/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodLookup(t *testing.T) {
	get, err := registry.ArrayList.Method("get", registry.PrimitiveInt)
	require.NoError(t, err)
	assert.Same(t, registry.List, get.DeclaringClass())
	assert.Equal(t, "java.util.List.get(int)", get.String())

	add, err := registry.ArrayList.Method("add", types.Object)
	require.NoError(t, err)
	assert.Same(t, registry.Collection, add.DeclaringClass())
	assert.Equal(t, []types.Type{registry.Collection.TypeParams()[0]}, add.ParamTypes())

	_, err = registry.ArrayList.Method("get")
	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "(E004) cannot find method get[] on java.util.ArrayList", types.FormatWithCode(err))
}

func TestConstructorLookup(t *testing.T) {
	ctor, err := registry.ArrayList.Constructor(registry.Collection)
	require.NoError(t, err)
	assert.Equal(t, "java.util.ArrayList(java.util.Collection<? extends E>)", ctor.String())
	assert.Equal(t, "<init>", ctor.Name())

	_, err = registry.ArrayList.Constructor(registry.String)
	var notFound *types.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFieldLookup(t *testing.T) {
	base := types.NewClass("com.example.Base", types.KindClass)
	v := base.AddTypeParam("V")
	base.AddField("value", v)
	base.Seal()
	derived := types.NewClass("com.example.Derived", types.KindClass).
		SetSuper(of(base, registry.String)).
		Seal()

	field, err := derived.Field("value")
	require.NoError(t, err)
	assert.Same(t, base, field.DeclaringClass())
	assert.Equal(t, "com.example.Base.value", field.String())

	expanded, err := types.ExpandMember(field, derived)
	require.NoError(t, err)
	assert.Same(t, registry.String, expanded)

	_, err = derived.Field("missing")
	var notFound *types.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestTypeVariableLookup(t *testing.T) {
	e, err := types.ClassTypeVariable("E", registry.List)
	require.NoError(t, err)
	assert.Same(t, registry.List, e.Decl())

	v, err := types.MethodTypeVariable("V", registry.Function, "andThen", registry.Function)
	require.NoError(t, err)
	assert.Equal(t, "java.util.function.Function.andThen(java.util.function.Function<? super R, ? extends V>).V", v.Key().String())

	generic := types.NewClass("com.example.Generic", types.KindClass)
	generic.AddConstructor().AddTypeParam("X")
	generic.Seal()
	x, err := types.ConstructorTypeVariable("X", generic)
	require.NoError(t, err)
	assert.Equal(t, "X", x.Name())

	_, err = types.ClassTypeVariable("Nope", registry.List)
	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cannot find type variable 'Nope' on java.util.List", err.Error())

	_, err = types.MethodTypeVariable("V", registry.Function, "compose")
	assert.ErrorAs(t, err, &notFound)
}

func TestMemberType(t *testing.T) {
	keySet, err := registry.Map.Method("keySet")
	require.NoError(t, err)
	assert.Equal(t, "java.util.Set<K>", types.MemberType(keySet).String())

	ctor, err := registry.HashMap.Constructor()
	require.NoError(t, err)
	assert.Same(t, registry.HashMap, types.MemberType(ctor))

	assert.Nil(t, types.MemberType(nil))
}

func TestParameters(t *testing.T) {
	put, err := registry.Map.Method("put", types.Object, types.Object)
	require.NoError(t, err)
	params := put.Params()
	require.Len(t, params, 2)
	assert.Equal(t, 1, params[1].Index())
	assert.Same(t, put, params[1].Executable())
	assert.Equal(t, "V", params[1].Type().String())
	assert.Equal(t, "java.util.Map.put(K, V)#1", params[1].String())
}
