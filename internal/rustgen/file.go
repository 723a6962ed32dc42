// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package rustgen translates a resolved schema graph into Rust source
// targeting the protrust runtime crate. One source unit is produced per
// schema file, plus a single mod.rs manifest per run; see GenerateFile and
// GenerateManifest.
package rustgen

import (
	"fmt"

	"github.com/ObsidianMinor/protrust/internal/schema"
)

// OutputFilePath is the deterministic path of a file's generated unit
// within the output tree, derived from the schema file's own path.
func OutputFilePath(f *schema.File, opts Options) string {
	return f.Name + "/protrust" + opts.FileExtension
}

// GenerateFile produces the source unit for one schema file: the file
// module aliases, then every top-level message, enum, and extension in
// declared order. The unit expects to be mounted inside the module
// scaffolding emitted by GenerateManifest.
func GenerateFile(f *schema.File, opts Options) ([]byte, error) {
	w := newWriter()

	w.line("pub(self) use super::__file;")
	w.line("pub(self) use ::protrust::gen_prelude as __prelude;")
	w.line("")

	for _, m := range f.Messages {
		if err := generateMessage(w, m, opts); err != nil {
			return nil, fmt.Errorf("file %q: %w", f.Name, err)
		}
	}
	for _, e := range f.Enums {
		generateEnum(w, e)
	}
	for _, x := range f.Extensions {
		g, err := newFieldGenerator(x)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", f.Name, err)
		}
		g.extension(w)
	}

	return w.Bytes(), nil
}
