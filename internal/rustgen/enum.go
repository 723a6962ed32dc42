// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import "github.com/ObsidianMinor/protrust/internal/schema"

// generateEnum emits an enum as a newtype over i32. The wire format lets
// unknown values round-trip, so the type is open: conversions are total
// and the Debug impl falls back to the raw integer for values with no
// declared constant.
func generateEnum(w *writer, e *schema.Enum) {
	name := Escape(e.Name)

	w.line("#[derive(Clone, Copy, PartialEq, Eq, Hash, PartialOrd, Ord)]")
	w.linef("pub struct %s(pub i32);", name)
	w.line("")
	w.linef("impl __prelude::Enum for %s { }", name)
	w.linef("impl __prelude::From<i32> for %s {", name)
	w.push()
	w.line("fn from(x: i32) -> Self {")
	w.push()
	w.line("Self(x)")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")
	w.linef("impl __prelude::From<%s> for i32 {", name)
	w.push()
	w.linef("fn from(x: %s) -> Self {", name)
	w.push()
	w.line("x.0")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")
	w.linef("impl __prelude::Default for %s {", name)
	w.push()
	w.line("fn default() -> Self {")
	w.push()
	w.line("Self(0)")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")

	w.linef("impl %s {", name)
	w.push()
	for _, v := range e.Values {
		w.linef("pub const %s: Self = Self(%d);", Escape(v.Name), v.Number)
	}
	w.pop()
	w.line("}")

	w.linef("impl __prelude::Debug for %s {", name)
	w.push()
	w.line("fn fmt(&self, f: &mut __prelude::Formatter) -> __prelude::fmt::Result {")
	w.push()
	w.line("#[allow(unreachable_patterns)]")
	w.line("match *self {")
	w.push()
	for _, v := range e.Values {
		w.linef("Self::%s => f.write_str(%q),", Escape(v.Name), v.Name)
	}
	w.line("Self(x) => x.fmt(f),")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")
	w.pop()
	w.line("}")
}
