// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

// repeatedField generates non-map repeated fields. Packable fields
// register both the packed and the unpacked tag so readers accept either
// encoding; the branch for the declared encoding comes first. Size and
// write follow the declared encoding only.
type repeatedField struct {
	baseField

	// typ is the stored container type, arg the codec generic argument.
	typ string
	arg string

	packedTag uint32
}

func newRepeatedField(base baseField) *repeatedField {
	g := &repeatedField{
		baseField: base,
		typ:       "__prelude::RepeatedField<" + rustType(base.field) + ">",
		arg:       rawType(base.field),
	}
	if base.field.IsPackable() {
		g.packedTag = MakeTag(base.field.Number, WireLengthDelimited)
	}
	return g
}

func (g *repeatedField) structField(w *writer) {
	w.linef("%s: %s,", g.name(), g.typ)
}

func (g *repeatedField) mergeBranches(w *writer) {
	unpacked := func() {
		w.linef("%d => field.add_entries_to::<_, %s>(Self::%s, &mut self.%s)?,",
			g.tag, g.arg, g.numName(), g.name())
	}
	if !g.field.IsPackable() {
		unpacked()
		return
	}

	packed := func() {
		w.linef("%d => field.add_entries_to::<_, __prelude::pr::Packed<%s>>(Self::%s, &mut self.%s)?,",
			g.packedTag, g.arg, g.numName(), g.name())
	}
	if g.field.IsPacked() {
		packed()
		unpacked()
	} else {
		unpacked()
		packed()
	}
}

func (g *repeatedField) calculateSize(w *writer) {
	w.linef("builder = builder.add_values::<_, %s>(Self::%s, &self.%s)?;",
		g.declaredArg(), g.numName(), g.name())
}

func (g *repeatedField) writeTo(w *writer) {
	w.linef("output.write_values::<_, %s>(Self::%s, &self.%s)?;",
		g.declaredArg(), g.numName(), g.name())
}

// declaredArg is the codec argument for the field's declared encoding.
func (g *repeatedField) declaredArg() string {
	if g.field.IsPacked() {
		return "__prelude::pr::Packed<" + g.arg + ">"
	}
	return g.arg
}

func (g *repeatedField) isInitialized(w *writer) {
	w.linef("if !__prelude::p::is_initialized(&self.%s) {", g.name())
	w.push()
	w.line("return false;")
	w.pop()
	w.line("}")
}

func (g *repeatedField) items(w *writer) {
	name := g.name()
	w.linef("pub fn %s(&self) -> &%s {", name, g.typ)
	w.push()
	w.linef("&self.%s", name)
	w.pop()
	w.line("}")
	w.linef("pub fn %s_mut(&mut self) -> &mut %s {", name, g.typ)
	w.push()
	w.linef("&mut self.%s", name)
	w.pop()
	w.line("}")
}

func (g *repeatedField) extension(w *writer) {
	w.linef("pub static %s: __prelude::RepeatedExtension<%s, %s> = unsafe { __prelude::RepeatedExtension::new_unchecked(%d) };",
		extensionName(g.field.Name), g.extendeePath(), g.declaredArg(), g.field.Number)
}
