// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"fmt"

	"github.com/ObsidianMinor/protrust/internal/schema"
)

// fieldGenerator emits the per-field fragments of a message. Each method
// writes zero or more complete lines; concatenating every field's
// fragments of one kind in declared order yields the aggregate block.
type fieldGenerator interface {
	// structField emits the field's struct member declaration.
	structField(w *writer)
	// mergeBranches emits the deserialization match arms keyed by tag.
	mergeBranches(w *writer)
	// calculateSize emits the field's size-accumulation statement.
	calculateSize(w *writer)
	// writeTo emits the field's serialization statement.
	writeTo(w *writer)
	// isInitialized emits the field's initialization check.
	isInitialized(w *writer)
	// numberConst emits the field-number constant.
	numberConst(w *writer)
	// items emits the default constants and accessor functions.
	items(w *writer)
	// extension emits the extension declaration for extension fields.
	extension(w *writer)
}

// newFieldGenerator selects the generation strategy for one field. The
// choice is made once; every call site handles exactly these four shapes.
func newFieldGenerator(f *schema.Field) (fieldGenerator, error) {
	wt, err := WireTypeFor(f.Kind)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	base := baseField{field: f, tag: MakeTag(f.Number, wt)}

	switch {
	case f.IsMap():
		return newMapField(base), nil
	case f.IsRepeated():
		return newRepeatedField(base), nil
	case f.Kind == schema.KindMessage || f.Kind == schema.KindGroup:
		return &messageField{base}, nil
	default:
		return &primitiveField{base}, nil
	}
}

// baseField carries what every strategy needs: the field and its wire tag.
type baseField struct {
	field *schema.Field
	tag   uint32
}

func (b *baseField) proto2() bool {
	return b.field.File.Syntax == schema.Proto2
}

func (b *baseField) name() string {
	return Escape(b.field.Name)
}

func (b *baseField) numName() string {
	return FieldNumberName(b.field.Name)
}

func (b *baseField) numberConst(w *writer) {
	w.linef("pub const %s: __prelude::FieldNumber = unsafe { __prelude::FieldNumber::new_unchecked(%d) };",
		b.numName(), b.field.Number)
}

// extendeePath resolves the extended message for extension declarations.
func (b *baseField) extendeePath() string {
	return messagePath(b.field.File, b.field.Extendee)
}
