// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

// messageField generates singular embedded-message (and group) fields.
// Storage is an optional boxed slot: messages may embed themselves through
// a reference cycle, so the aggregate must not grow with schema recursion
// depth. A repeat occurrence of the field on the wire merges into the
// existing value instead of replacing it.
type messageField struct {
	baseField
}

func (g *messageField) fieldType() string {
	return "__prelude::Option<__prelude::Box<" + rustType(g.field) + ">>"
}

func (g *messageField) structField(w *writer) {
	w.linef("%s: %s,", g.name(), g.fieldType())
}

func (g *messageField) mergeBranches(w *writer) {
	w.linef("%d =>", g.tag)
	w.push()
	w.linef("match &mut self.%s {", g.name())
	w.push()
	w.linef("__prelude::Some(v) => field.merge_value::<%s>(Self::%s, v)?,", rawType(g.field), g.numName())
	w.linef("opt @ __prelude::None => *opt = __prelude::Some(__prelude::Box::new(field.read_value::<%s>(Self::%s)?)),",
		rawType(g.field), g.numName())
	w.pop()
	w.line("},")
	w.pop()
}

func (g *messageField) calculateSize(w *writer) {
	w.linef("if let __prelude::Some(value) = &self.%s {", g.name())
	w.push()
	w.linef("builder = builder.add_value::<%s>(Self::%s, value)?;", rawType(g.field), g.numName())
	w.pop()
	w.line("}")
}

func (g *messageField) writeTo(w *writer) {
	w.linef("if let __prelude::Some(value) = &self.%s {", g.name())
	w.push()
	w.linef("output.write_value::<%s>(Self::%s, value)?;", rawType(g.field), g.numName())
	w.pop()
	w.line("}")
}

func (g *messageField) isInitialized(w *writer) {
	if g.field.IsRequired() {
		w.linef("if self.%s.is_none() {", g.name())
		w.push()
		w.line("return false;")
		w.pop()
		w.line("}")
	}
	w.linef("if let __prelude::Some(value) = &self.%s {", g.name())
	w.push()
	w.line("if !value.is_initialized() {")
	w.push()
	w.line("return false;")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")
}

func (g *messageField) items(w *writer) {
	name := g.name()
	plain := g.field.Name
	typ := rustType(g.field)

	w.linef("pub fn %s_option(&self) -> __prelude::Option<&%s> {", plain, typ)
	w.push()
	w.linef("self.%s.as_deref()", name)
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
	w.linef("self.%s.take().map(|v| *v)", name)
	w.pop()
	w.line("}")
	w.linef("pub fn clear_%s(&mut self) {", plain)
	w.push()
	w.linef("self.%s = __prelude::None", name)
	w.pop()
	w.line("}")
}

func (g *messageField) extension(w *writer) {
	w.linef("pub static %s: __prelude::Extension<%s, %s> = unsafe { __prelude::Extension::new_unchecked(%d) };",
		extensionName(g.field.Name), g.extendeePath(), rawType(g.field), g.field.Number)
}
