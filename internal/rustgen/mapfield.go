// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

// mapField generates map fields. On the wire a map is a repeated run of
// synthetic (key=1, value=2) entry messages, so generation reuses the
// repeated strategy with an associative container type and a
// (key codec, value codec) pair as the generic argument, letting the
// runtime's entry reader/writer stay generic over both.
type mapField struct {
	repeatedField
}

func newMapField(base baseField) *mapField {
	key := base.field.MapKey()
	value := base.field.MapValue()

	g := &mapField{repeatedField{
		baseField: base,
		typ:       "__prelude::MapField<" + rustType(key) + ", " + rustType(value) + ">",
		arg:       "(" + rawType(key) + ", " + rawType(value) + ")",
	}}
	return g
}

// extension is a no-op: map fields cannot be extensions.
func (g *mapField) extension(w *writer) {}
