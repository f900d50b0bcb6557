package registry

import (
	"github.com/cottand/tyra/types"
)

var (
	javaIO       = types.NewPackage("java.io")
	javaUtil     = types.NewPackage("java.util")
	javaFunction = types.NewPackage("java.util.function")
)

func declare(pkg *types.Package, name string, kind types.Kind) *types.Class {
	return types.NewClass(pkg.Name()+"."+name, kind).SetPackage(pkg)
}

func primitive(name string) *types.Class {
	return types.NewClass(name, types.KindPrimitive).Seal()
}

func of(raw *types.Class, args ...types.Type) *types.Parameterized {
	return types.NewParameterized(raw, nil, args...)
}

var (
	PrimitiveBoolean = primitive("boolean")
	PrimitiveByte    = primitive("byte")
	PrimitiveChar    = primitive("char")
	PrimitiveShort   = primitive("short")
	PrimitiveInt     = primitive("int")
	PrimitiveLong    = primitive("long")
	PrimitiveFloat   = primitive("float")
	PrimitiveDouble  = primitive("double")
	PrimitiveVoid    = primitive("void")
)

var (
	Serializable = declare(javaIO, "Serializable", types.KindInterface).Seal()
	Cloneable    = declare(types.LangPackage, "Cloneable", types.KindInterface).Seal()

	CharSequence = func() *types.Class {
		c := declare(types.LangPackage, "CharSequence", types.KindInterface)
		c.AddMethod("length").SetReturn(PrimitiveInt)
		return c.Seal()
	}()

	Comparable = func() *types.Class {
		c := declare(types.LangPackage, "Comparable", types.KindInterface)
		t := c.AddTypeParam("T")
		compareTo := c.AddMethod("compareTo").SetReturn(PrimitiveInt)
		compareTo.AddParam(t)
		return c.Seal()
	}()

	Number = declare(types.LangPackage, "Number", types.KindClass).AddInterface(Serializable).Seal()

	String = func() *types.Class {
		c := declare(types.LangPackage, "String", types.KindClass)
		c.AddInterface(Serializable, of(Comparable, c), CharSequence)
		c.AddMethod("length").SetReturn(PrimitiveInt)
		return c.Seal()
	}()

	Enum = func() *types.Class {
		c := declare(types.LangPackage, "Enum", types.KindClass)
		e := c.AddTypeParam("E")
		e.SetBounds(of(c, e))
		c.AddInterface(of(Comparable, e), Serializable)
		c.AddMethod("name").SetReturn(String)
		return c.Seal()
	}()

	Iterable = func() *types.Class {
		c := declare(types.LangPackage, "Iterable", types.KindInterface)
		t := c.AddTypeParam("T")
		forEach := c.AddMethod("forEach").SetReturn(PrimitiveVoid)
		forEach.AddParam(of(Consumer, types.Super(t)))
		return c.Seal()
	}()
)

// wrapper declares the boxed class of a primitive
func wrapper(name string, numeric bool) *types.Class {
	c := declare(types.LangPackage, name, types.KindClass)
	if numeric {
		c.SetSuper(Number)
	} else {
		c.AddInterface(Serializable)
	}
	c.AddInterface(of(Comparable, c))
	return c.Seal()
}

var (
	Boolean   = wrapper("Boolean", false)
	Character = wrapper("Character", false)
	Byte      = wrapper("Byte", true)
	Short     = wrapper("Short", true)
	Integer   = wrapper("Integer", true)
	Long      = wrapper("Long", true)
	Float     = wrapper("Float", true)
	Double    = wrapper("Double", true)
	Void      = declare(types.LangPackage, "Void", types.KindClass).Seal()
)

var (
	Supplier = func() *types.Class {
		c := declare(javaFunction, "Supplier", types.KindInterface)
		t := c.AddTypeParam("T")
		c.AddMethod("get").SetReturn(t)
		return c.Seal()
	}()

	Consumer = func() *types.Class {
		c := declare(javaFunction, "Consumer", types.KindInterface)
		t := c.AddTypeParam("T")
		accept := c.AddMethod("accept").SetReturn(PrimitiveVoid)
		accept.AddParam(t)
		return c.Seal()
	}()

	Function = func() *types.Class {
		c := declare(javaFunction, "Function", types.KindInterface)
		t := c.AddTypeParam("T")
		r := c.AddTypeParam("R")
		apply := c.AddMethod("apply").SetReturn(r)
		apply.AddParam(t)

		// <V> Function<T, V> andThen(Function<? super R, ? extends V> after)
		andThen := c.AddMethod("andThen")
		v := andThen.AddTypeParam("V")
		andThen.SetReturn(of(c, t, v))
		andThen.AddParam(of(c, types.Super(r), types.Extends(v)))
		return c.Seal()
	}()
)

var (
	Collection = func() *types.Class {
		c := declare(javaUtil, "Collection", types.KindInterface)
		e := c.AddTypeParam("E")
		c.AddInterface(of(Iterable, e))
		c.AddMethod("size").SetReturn(PrimitiveInt)
		add := c.AddMethod("add").SetReturn(PrimitiveBoolean)
		add.AddParam(e)
		contains := c.AddMethod("contains").SetReturn(PrimitiveBoolean)
		contains.AddParam(types.Object)
		return c.Seal()
	}()

	List = func() *types.Class {
		c := declare(javaUtil, "List", types.KindInterface)
		e := c.AddTypeParam("E")
		c.AddInterface(of(Collection, e))
		get := c.AddMethod("get").SetReturn(e)
		get.AddParam(PrimitiveInt)
		return c.Seal()
	}()

	Set = func() *types.Class {
		c := declare(javaUtil, "Set", types.KindInterface)
		e := c.AddTypeParam("E")
		c.AddInterface(of(Collection, e))
		return c.Seal()
	}()

	Map = func() *types.Class {
		c := declare(javaUtil, "Map", types.KindInterface)
		k := c.AddTypeParam("K")
		v := c.AddTypeParam("V")
		get := c.AddMethod("get").SetReturn(v)
		get.AddParam(types.Object)
		put := c.AddMethod("put").SetReturn(v)
		put.AddParam(k)
		put.AddParam(v)
		c.AddMethod("keySet").SetReturn(of(Set, k))
		return c.Seal()
	}()

	ArrayList = func() *types.Class {
		c := declare(javaUtil, "ArrayList", types.KindClass)
		e := c.AddTypeParam("E")
		c.AddInterface(of(List, e), Cloneable, Serializable)
		c.AddConstructor()
		c.AddConstructor().AddParam(of(Collection, types.Extends(e)))
		return c.Seal()
	}()

	HashMap = func() *types.Class {
		c := declare(javaUtil, "HashMap", types.KindClass)
		k := c.AddTypeParam("K")
		v := c.AddTypeParam("V")
		c.AddInterface(of(Map, k, v), Cloneable, Serializable)
		c.AddConstructor()
		return c.Seal()
	}()

	UUID = func() *types.Class {
		c := declare(javaUtil, "UUID", types.KindClass)
		c.AddInterface(Serializable, of(Comparable, c))
		c.AddMethod("randomUUID").SetReturn(c)
		return c.Seal()
	}()

	Collections = func() *types.Class {
		c := declare(javaUtil, "Collections", types.KindClass)

		// <T> Set<T> singleton(T o)
		singleton := c.AddMethod("singleton")
		t := singleton.AddTypeParam("T")
		singleton.SetReturn(of(Set, t))
		singleton.AddParam(t)

		// <T> List<T> emptyList()
		emptyList := c.AddMethod("emptyList")
		emptyList.SetReturn(of(List, emptyList.AddTypeParam("T")))
		return c.Seal()
	}()

	Arrays = func() *types.Class {
		c := declare(javaUtil, "Arrays", types.KindClass)

		// <T> List<T> asList(T... a)
		asList := c.AddMethod("asList")
		t := asList.AddTypeParam("T")
		asList.SetReturn(of(List, t))
		asList.AddParam(types.NewGenericArray(t))
		return c.Seal()
	}()
)

var boxes = map[*types.Class]*types.Class{
	PrimitiveBoolean: Boolean,
	PrimitiveChar:    Character,
	PrimitiveByte:    Byte,
	PrimitiveShort:   Short,
	PrimitiveInt:     Integer,
	PrimitiveLong:    Long,
	PrimitiveFloat:   Float,
	PrimitiveDouble:  Double,
	PrimitiveVoid:    Void,
}

var unboxes = func() map[*types.Class]*types.Class {
	m := make(map[*types.Class]*types.Class, len(boxes))
	for p, w := range boxes {
		m[w] = p
	}
	return m
}()

// Box returns the wrapper class of a primitive, and any other class unchanged
func Box(c *types.Class) *types.Class {
	if w, ok := boxes[c]; ok {
		return w
	}
	return c
}

// Unbox returns the primitive of a wrapper class, and any other class unchanged
func Unbox(c *types.Class) *types.Class {
	if p, ok := unboxes[c]; ok {
		return p
	}
	return c
}

func builtins() []*types.Class {
	return []*types.Class{
		PrimitiveBoolean, PrimitiveByte, PrimitiveChar, PrimitiveShort, PrimitiveInt,
		PrimitiveLong, PrimitiveFloat, PrimitiveDouble, PrimitiveVoid,
		types.Object, Serializable, Cloneable, CharSequence, Comparable, Number, String,
		Enum, Iterable,
		Boolean, Character, Byte, Short, Integer, Long, Float, Double, Void,
		Supplier, Consumer, Function,
		Collection, List, Set, Map, ArrayList, HashMap, UUID, Collections, Arrays,
	}
}
