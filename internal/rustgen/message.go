// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"fmt"

	"github.com/ObsidianMinor/protrust/internal/schema"
)

// generateMessage emits one message: the aggregate struct, the Message and
// Initializable trait impls, the consts-and-accessors impl block, and a
// nested module when the message declares inner items.
func generateMessage(w *writer, m *schema.Message, opts Options) error {
	gens := make([]fieldGenerator, 0, len(m.Fields))
	for _, f := range m.Fields {
		g, err := newFieldGenerator(f)
		if err != nil {
			return fmt.Errorf("message %q: %w", m.FullName(), err)
		}
		gens = append(gens, g)
	}

	name := Escape(m.Name)

	w.line("#[derive(Clone, Debug, PartialEq, Default)]")
	w.linef("pub struct %s {", name)
	w.push()
	for _, g := range gens {
		g.structField(w)
	}
	if m.HasExtensionRanges {
		w.line("__extensions: __prelude::ExtensionSet<Self>,")
	}
	w.line("__unknown_fields: __prelude::UnknownFieldSet,")
	w.pop()
	w.line("}")

	w.linef("impl __prelude::Message for self::%s {", name)
	w.push()

	w.line("fn merge_from<T: __prelude::Input>(&mut self, input: &mut __prelude::CodedReader<T>) -> __prelude::read::Result<()> {")
	w.push()
	w.line("while let __prelude::Some(field) = input.read_field()? {")
	w.push()
	w.line("match field.tag() {")
	w.push()
	for _, g := range gens {
		g.mergeBranches(w)
	}
	if m.HasExtensionRanges {
		w.line("_ => ")
		w.push()
		w.line("field")
		w.push()
		w.line(".check_and_try_add_field_to(&mut self.__extensions)?")
		w.line(".or_try(&mut self.__unknown_fields)?")
		w.line(".or_skip()?")
		w.pop()
		w.pop()
	} else {
		w.line("_ => ")
		w.push()
		w.line("field")
		w.push()
		w.line(".check_and_try_add_field_to(&mut self.__unknown_fields)?")
		w.line(".or_skip()?")
		w.pop()
		w.pop()
	}
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")
	w.line("__prelude::Ok(())")
	w.pop()
	w.line("}")

	w.line("fn calculate_size(&self) -> __prelude::Option<__prelude::Length> {")
	w.push()
	w.line("let mut builder = __prelude::pio::LengthBuilder::new();")
	for _, g := range gens {
		g.calculateSize(w)
	}
	if m.HasExtensionRanges {
		w.line("builder = builder.add_fields(&self.__extensions)?;")
	}
	w.line("builder = builder.add_fields(&self.__unknown_fields)?;")
	w.line("__prelude::Some(builder.build())")
	w.pop()
	w.line("}")

	w.line("fn write_to<T: __prelude::Output>(&self, output: &mut __prelude::CodedWriter<T>) -> __prelude::write::Result {")
	w.push()
	for _, g := range gens {
		g.writeTo(w)
	}
	if m.HasExtensionRanges {
		w.line("output.write_fields(&self.__extensions)?;")
	}
	w.line("output.write_fields(&self.__unknown_fields)?;")
	w.line("__prelude::Ok(())")
	w.pop()
	w.line("}")

	w.line("fn unknown_fields(&self) -> &__prelude::UnknownFieldSet {")
	w.push()
	w.line("&self.__unknown_fields")
	w.pop()
	w.line("}")
	w.line("fn unknown_fields_mut(&mut self) -> &mut __prelude::UnknownFieldSet {")
	w.push()
	w.line("&mut self.__unknown_fields")
	w.pop()
	w.line("}")

	w.pop()
	w.line("}")

	w.linef("impl __prelude::Initializable for self::%s {", name)
	w.push()
	w.line("fn is_initialized(&self) -> bool {")
	w.push()
	for _, g := range gens {
		g.isInitialized(w)
	}
	w.line("true")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")

	if m.HasExtensionRanges {
		w.linef("impl __prelude::ExtendableMessage for self::%s {", name)
		w.push()
		w.line("fn extensions(&self) -> &__prelude::ExtensionSet<Self> {")
		w.push()
		w.line("&self.__extensions")
		w.pop()
		w.line("}")
		w.line("fn extensions_mut(&mut self) -> &mut __prelude::ExtensionSet<Self> {")
		w.push()
		w.line("&mut self.__extensions")
		w.pop()
		w.line("}")
		w.pop()
		w.line("}")
	}

	w.linef("__prelude::prefl::dbg_msg!(self::%s { full_name: %q, name: %q });", name, m.FullName(), name)

	w.linef("impl self::%s {", name)
	w.push()
	for _, g := range gens {
		g.numberConst(w)
		g.items(w)
	}
	w.pop()
	w.line("}")

	if m.HasInnerItems() {
		if err := generateMessageMod(w, m, opts); err != nil {
			return err
		}
	}
	return nil
}

// generateMessageMod emits the nested module holding a message's inner
// messages, enums, and extensions. Synthetic map entry messages are
// consumed by their map field and never generated.
func generateMessageMod(w *writer, m *schema.Message, opts Options) error {
	w.linef("pub mod %s {", MessageModName(m.Name))
	w.push()
	w.line("pub(self) use super::__file;")
	w.line("pub(self) use ::protrust::gen_prelude as __prelude;")
	w.line("")

	for _, nested := range m.Nested {
		if nested.MapEntry {
			continue
		}
		if err := generateMessage(w, nested, opts); err != nil {
			return err
		}
	}
	for _, e := range m.Enums {
		generateEnum(w, e)
	}
	for _, x := range m.Extensions {
		g, err := newFieldGenerator(x)
		if err != nil {
			return fmt.Errorf("message %q: %w", m.FullName(), err)
		}
		g.extension(w)
	}

	w.pop()
	w.line("}")
	return nil
}
