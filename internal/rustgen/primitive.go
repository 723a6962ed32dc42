// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

// primitiveField generates singular scalar, string, bytes, and enum
// fields. Under proto2 the member is an Option wrapper with explicit
// presence; under proto3 it is the bare value and absence means default.
type primitiveField struct {
	baseField
}

func (g *primitiveField) fieldType() string {
	if g.proto2() {
		return "__prelude::Option<" + rustType(g.field) + ">"
	}
	return rustType(g.field)
}

func (g *primitiveField) structField(w *writer) {
	w.linef("%s: %s,", g.name(), g.fieldType())
}

func (g *primitiveField) mergeBranches(w *writer) {
	if g.proto2() {
		w.linef("%d => field.merge_value::<%s>(Self::%s, self.%s.get_or_insert_with(__prelude::Default::default))?,",
			g.tag, rawType(g.field), g.numName(), g.name())
	} else {
		w.linef("%d => field.merge_value::<%s>(Self::%s, &mut self.%s)?,",
			g.tag, rawType(g.field), g.numName(), g.name())
	}
}

func (g *primitiveField) calculateSize(w *writer) {
	if g.proto2() {
		w.linef("if let __prelude::Some(value) = &self.%s {", g.name())
		w.push()
		w.linef("builder = builder.add_value::<%s>(Self::%s, value)?;", rawType(g.field), g.numName())
		w.pop()
		w.line("}")
	} else {
		w.linef("if self.%s != Self::%s {", g.name(), FieldDefaultName(g.field.Name))
		w.push()
		w.linef("builder = builder.add_value::<%s>(Self::%s, &self.%s)?;", rawType(g.field), g.numName(), g.name())
		w.pop()
		w.line("}")
	}
}

func (g *primitiveField) writeTo(w *writer) {
	if g.proto2() {
		w.linef("if let __prelude::Some(value) = &self.%s {", g.name())
		w.push()
		w.linef("output.write_value::<%s>(Self::%s, value)?;", rawType(g.field), g.numName())
		w.pop()
		w.line("}")
	} else {
		w.linef("if self.%s != Self::%s {", g.name(), FieldDefaultName(g.field.Name))
		w.push()
		w.linef("output.write_value::<%s>(Self::%s, &self.%s)?;", rawType(g.field), g.numName(), g.name())
		w.pop()
		w.line("}")
	}
}

func (g *primitiveField) isInitialized(w *writer) {
	if !g.field.IsRequired() {
		return
	}
	w.linef("if self.%s.is_none() {", g.name())
	w.push()
	w.line("return false;")
	w.pop()
	w.line("}")
}

func (g *primitiveField) items(w *writer) {
	name := g.name()
	plain := g.field.Name
	typ := rustType(g.field)

	w.linef("pub const %s: %s = %s;", FieldDefaultName(plain), defaultType(g.field), defaultValue(g.field))

	if !g.proto2() {
		w.linef("pub fn %s(&self) -> &%s {", name, typ)
		w.push()
		w.linef("&self.%s", name)
		w.pop()
		w.line("}")
		w.linef("pub fn %s_mut(&mut self) -> &mut %s {", name, typ)
		w.push()
		w.linef("&mut self.%s", name)
		w.pop()
		w.line("}")
		return
	}

	w.linef("pub fn %s(&self) -> %s {", name, defaultTypeRef(g.field))
	w.push()
	if isCopyable(g.field.Kind) {
		w.linef("self.%s.unwrap_or(Self::%s)", name, FieldDefaultName(plain))
	} else {
		w.linef("self.%s.as_ref().map_or(Self::%s, __prelude::AsRef::as_ref)", name, FieldDefaultName(plain))
	}
	w.pop()
	w.line("}")

	w.linef("pub fn %s_option(&self) -> __prelude::Option<&%s> {", plain, typ)
	w.push()
	w.linef("self.%s.as_ref()", name)
	w.pop()
	w.line("}")
	w.linef("pub fn %s_mut(&mut self) -> &mut %s {", plain, typ)
	w.push()
	w.linef("self.%s.get_or_insert_with(__prelude::Default::default)", name)
	w.pop()
	w.line("}")
	w.linef("pub fn has_%s(&self) -> bool {", plain)
	w.push()
	w.linef("self.%s.is_some()", name)
	w.pop()
	w.line("}")
	w.linef("pub fn set_%s(&mut self, value: %s) {", plain, typ)
	w.push()
	w.linef("self.%s = __prelude::Some(__prelude::From::from(value))", name)
	w.pop()
	w.line("}")
	w.linef("pub fn take_%s(&mut self) -> __prelude::Option<%s> {", plain, typ)
	w.push()
	w.linef("self.%s.take()", name)
	w.pop()
	w.line("}")
	w.linef("pub fn clear_%s(&mut self) {", plain)
	w.push()
	w.linef("self.%s = __prelude::None", name)
	w.pop()
	w.line("}")
}

func (g *primitiveField) extension(w *writer) {
	w.linef("pub static %s: __prelude::Extension<%s, %s> = unsafe { __prelude::Extension::new_unchecked(%d) };",
		extensionName(g.field.Name), g.extendeePath(), rawType(g.field), g.field.Number)
}
