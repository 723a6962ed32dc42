// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import "github.com/ObsidianMinor/protrust/internal/schema"

// manifestDisclaimer opens the manifest so nobody edits generated output
// by hand.
const manifestDisclaimer = "// DO NOT EDIT! This file was generated by protoc-gen-rust as part of the protrust library\n\n"

// GenerateManifest produces the single mod.rs for a run. For every
// generated file it emits a module bound to the file's output directory:
// the `__globals` and `__file` self-aliases generated code relies on, an
// `__imports` module re-exporting each dependency's file module under its
// deterministic alias, the generated unit itself, and any additional
// module imports from the options.
func GenerateManifest(files []*schema.File, opts Options) []byte {
	w := newWriter()
	w.raw(manifestDisclaimer)

	for _, f := range files {
		generateFileMod(w, f, opts)
	}
	return w.Bytes()
}

func generateFileMod(w *writer, f *schema.File, opts Options) {
	fileMod := FileModName(f.Name)

	w.linef("#[path = %q]", f.Name)
	w.linef("pub mod %s {", fileMod)
	w.push()
	w.line("pub(self) use super::globals as __globals;")
	w.linef("pub(self) use super::%s as __file;", fileMod)

	w.line("pub(self) mod __imports {")
	w.push()
	for _, dep := range f.Imports {
		w.linef("pub(super) use super::super::%s;", FileModName(dep.Name))
	}
	w.pop()
	w.line("}")
	w.line("")

	w.linef("#[path = \"protrust%s\"]", opts.FileExtension)
	w.line("mod protrust;")
	w.line("")
	w.line("pub use self::protrust::*;")

	for _, imp := range opts.Imports {
		w.line("")
		w.linef("#[path = \"%s%s\"]", imp, opts.FileExtension)
		w.linef("mod %s;", imp)
		w.line("")
		w.linef("pub use self::%s::*;", imp)
	}

	w.pop()
	w.line("}")
}
