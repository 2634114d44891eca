package main

//
// Everything in the world is an Object.
//
type Object struct {
	// Every object in the world has a unique key. No two objects
	// have the same key, and the key never changes.
	key int
	// Everything has a displayable name.
	name string
	// Everything has a normalized name that's used for comparisons
	// and lookups where case does not matter.
	normalName string
}

func newObject(key int, name string) Object {
	return Object{key: key, name: name, normalName: normalize(name)}
}

func (o *Object) Key() int {
	return o.key
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) NormalName() string {
	return o.normalName
}
