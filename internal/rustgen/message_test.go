// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ObsidianMinor/protrust/internal/schema"
)

func testFile(syntax schema.Syntax) *schema.File {
	return &schema.File{Name: "example.proto", Package: "example", Syntax: syntax}
}

func testMessage(f *schema.File, name string) *schema.Message {
	m := &schema.Message{Name: name, File: f}
	f.Messages = append(f.Messages, m)
	return m
}

func testField(m *schema.Message, name string, number int32, kind schema.Kind, label schema.Label) *schema.Field {
	fld := &schema.Field{
		Name:   name,
		Number: number,
		Kind:   kind,
		Label:  label,
		Parent: m,
		File:   m.File,
	}
	m.Fields = append(m.Fields, fld)
	return fld
}

func generate(t *testing.T, m *schema.Message) string {
	t.Helper()
	w := newWriter()
	require.NoError(t, generateMessage(w, m, DefaultOptions()))
	return w.String()
}

func TestGenerateMessage_Proto2OptionalInt32(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Test")
	testField(m, "value", 1, schema.KindInt32, schema.Optional)

	result := generate(t, m)

	assert.Contains(t, result, "pub struct Test {")
	assert.Contains(t, result, "value: __prelude::Option<__prelude::i32>,")
	assert.Contains(t, result, "8 => field.merge_value::<__prelude::pr::Int32>(Self::VALUE_NUMBER, self.value.get_or_insert_with(__prelude::Default::default))?,")
	assert.Contains(t, result, "pub const VALUE_NUMBER: __prelude::FieldNumber = unsafe { __prelude::FieldNumber::new_unchecked(1) };")
	assert.Contains(t, result, "pub const VALUE_DEFAULT: __prelude::i32 = 0;")
	assert.Contains(t, result, "pub fn value(&self) -> __prelude::i32 {")
	assert.Contains(t, result, "self.value.unwrap_or(Self::VALUE_DEFAULT)")
	assert.Contains(t, result, "pub fn value_option(&self) -> __prelude::Option<&__prelude::i32> {")
	assert.Contains(t, result, "pub fn has_value(&self) -> bool {")
	assert.Contains(t, result, "pub fn take_value(&mut self) -> __prelude::Option<__prelude::i32> {")
	assert.Contains(t, result, "pub fn clear_value(&mut self) {")
	assert.Contains(t, result, `__prelude::prefl::dbg_msg!(self::Test { full_name: "example.Test", name: "Test" });`)
}

func TestGenerateMessage_Proto2StringGetter(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Test")
	testField(m, "name", 1, schema.KindString, schema.Optional)

	result := generate(t, m)

	// Non-Copy values borrow through AsRef instead of unwrapping.
	assert.Contains(t, result, "pub fn name(&self) -> &__prelude::str {")
	assert.Contains(t, result, "self.name.as_ref().map_or(Self::NAME_DEFAULT, __prelude::AsRef::as_ref)")
	assert.Contains(t, result, `pub const NAME_DEFAULT: &'static __prelude::str = "";`)
}

func TestGenerateMessage_Proto3Scalar(t *testing.T) {
	f := testFile(schema.Proto3)
	m := testMessage(f, "Test")
	testField(m, "value", 1, schema.KindInt32, schema.Optional)

	result := generate(t, m)

	assert.Contains(t, result, "value: __prelude::i32,")
	assert.Contains(t, result, "8 => field.merge_value::<__prelude::pr::Int32>(Self::VALUE_NUMBER, &mut self.value)?,")
	assert.Contains(t, result, "if self.value != Self::VALUE_DEFAULT {")
	// The default is an associated const in both syntaxes: the size/write
	// guards compare against it, and impl blocks cannot hold statics.
	assert.Contains(t, result, "pub const VALUE_DEFAULT: __prelude::i32 = 0;")
	assert.NotContains(t, result, "pub static VALUE_DEFAULT")
	assert.Contains(t, result, "pub fn value(&self) -> &__prelude::i32 {")
	assert.Contains(t, result, "pub fn value_mut(&mut self) -> &mut __prelude::i32 {")
	assert.NotContains(t, result, "has_value")
	assert.NotContains(t, result, "value_option")
}

func TestGenerateMessage_PackedRepeated(t *testing.T) {
	f := testFile(schema.Proto3)
	m := testMessage(f, "Test")
	testField(m, "values", 2, schema.KindUint32, schema.Repeated)

	result := generate(t, m)

	assert.Contains(t, result, "values: __prelude::RepeatedField<__prelude::u32>,")

	packed := "18 => field.add_entries_to::<_, __prelude::pr::Packed<__prelude::pr::Uint32>>(Self::VALUES_NUMBER, &mut self.values)?,"
	unpacked := "16 => field.add_entries_to::<_, __prelude::pr::Uint32>(Self::VALUES_NUMBER, &mut self.values)?,"
	assert.Contains(t, result, packed)
	assert.Contains(t, result, unpacked)

	// Packed is the declared encoding under proto3, so its branch comes first.
	assert.Less(t, strings.Index(result, packed), strings.Index(result, unpacked))

	assert.Contains(t, result, "builder = builder.add_values::<_, __prelude::pr::Packed<__prelude::pr::Uint32>>(Self::VALUES_NUMBER, &self.values)?;")
	assert.Contains(t, result, "output.write_values::<_, __prelude::pr::Packed<__prelude::pr::Uint32>>(Self::VALUES_NUMBER, &self.values)?;")
}

func TestGenerateMessage_UnpackedRepeated(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Test")
	testField(m, "values", 2, schema.KindInt32, schema.Repeated)

	result := generate(t, m)

	packed := "18 => field.add_entries_to::<_, __prelude::pr::Packed<__prelude::pr::Int32>>(Self::VALUES_NUMBER, &mut self.values)?,"
	unpacked := "16 => field.add_entries_to::<_, __prelude::pr::Int32>(Self::VALUES_NUMBER, &mut self.values)?,"
	assert.Contains(t, result, packed)
	assert.Contains(t, result, unpacked)

	// Unpacked is the proto2 default, so its branch comes first.
	assert.Less(t, strings.Index(result, unpacked), strings.Index(result, packed))

	assert.Contains(t, result, "builder = builder.add_values::<_, __prelude::pr::Int32>(Self::VALUES_NUMBER, &self.values)?;")
}

func TestGenerateMessage_RepeatedString(t *testing.T) {
	f := testFile(schema.Proto3)
	m := testMessage(f, "Test")
	testField(m, "names", 1, schema.KindString, schema.Repeated)

	result := generate(t, m)

	// Strings are not packable even under proto3: only the unpacked branch.
	assert.Contains(t, result, "10 => field.add_entries_to::<_, __prelude::pr::String>(Self::NAMES_NUMBER, &mut self.names)?,")
	assert.NotContains(t, result, "Packed<__prelude::pr::String>")
}

func TestGenerateMessage_RequiredField(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Test")
	testField(m, "name", 1, schema.KindString, schema.Required)

	result := generate(t, m)

	assert.Contains(t, result, "if self.name.is_none() {")
	assert.Contains(t, result, "return false;")
}

func TestGenerateMessage_MessageField(t *testing.T) {
	f := testFile(schema.Proto2)
	child := testMessage(f, "Child")
	m := testMessage(f, "Parent")
	fld := testField(m, "child", 2, schema.KindMessage, schema.Optional)
	fld.Message = child

	result := generate(t, m)

	assert.Contains(t, result, "child: __prelude::Option<__prelude::Box<__file::Child>>,")
	assert.Contains(t, result, "18 =>")
	assert.Contains(t, result, "match &mut self.child {")
	assert.Contains(t, result, "__prelude::Some(v) => field.merge_value::<__prelude::pr::Message<__file::Child>>(Self::CHILD_NUMBER, v)?,")
	assert.Contains(t, result, "opt @ __prelude::None => *opt = __prelude::Some(__prelude::Box::new(field.read_value::<__prelude::pr::Message<__file::Child>>(Self::CHILD_NUMBER)?)),")
	assert.Contains(t, result, "if !value.is_initialized() {")
	assert.Contains(t, result, "pub fn child_option(&self) -> __prelude::Option<&__file::Child> {")
	assert.Contains(t, result, "self.child.take().map(|v| *v)")
}

func TestGenerateMessage_MapField(t *testing.T) {
	f := testFile(schema.Proto3)
	m := testMessage(f, "Test")

	entry := &schema.Message{Name: "LabelsEntry", File: f, Parent: m, MapEntry: true}
	m.Nested = append(m.Nested, entry)
	testField(entry, "key", 1, schema.KindString, schema.Optional)
	testField(entry, "value", 2, schema.KindInt32, schema.Optional)

	fld := testField(m, "labels", 3, schema.KindMessage, schema.Repeated)
	fld.Message = entry

	result := generate(t, m)

	assert.Contains(t, result, "labels: __prelude::MapField<__prelude::String, __prelude::i32>,")
	assert.Contains(t, result, "26 => field.add_entries_to::<_, (__prelude::pr::String, __prelude::pr::Int32)>(Self::LABELS_NUMBER, &mut self.labels)?,")
	assert.Contains(t, result, "builder = builder.add_values::<_, (__prelude::pr::String, __prelude::pr::Int32)>(Self::LABELS_NUMBER, &self.labels)?;")

	// The synthetic entry message never appears as a nested type.
	assert.NotContains(t, result, "LabelsEntry")
	assert.NotContains(t, result, "pub mod test {")
}

func TestGenerateMessage_NestedModule(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Outer")
	inner := &schema.Message{Name: "Inner", File: f, Parent: m}
	m.Nested = append(m.Nested, inner)
	testField(inner, "value", 1, schema.KindBool, schema.Optional)

	result := generate(t, m)

	assert.Contains(t, result, "pub mod outer {")
	assert.Contains(t, result, "pub struct Inner {")
	assert.Contains(t, result, "pub(self) use super::__file;")
	assert.Contains(t, result, "pub(self) use ::protrust::gen_prelude as __prelude;")
	assert.Contains(t, result, `__prelude::prefl::dbg_msg!(self::Inner { full_name: "example.Outer.Inner", name: "Inner" });`)
}

func TestGenerateMessage_ExtensionRanges(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Test")
	m.HasExtensionRanges = true
	testField(m, "value", 1, schema.KindInt32, schema.Optional)

	result := generate(t, m)

	assert.Contains(t, result, "__extensions: __prelude::ExtensionSet<Self>,")
	assert.Contains(t, result, "impl __prelude::ExtendableMessage for self::Test {")
	assert.Contains(t, result, ".check_and_try_add_field_to(&mut self.__extensions)?")
	assert.Contains(t, result, ".or_try(&mut self.__unknown_fields)?")
	assert.Contains(t, result, "builder = builder.add_fields(&self.__extensions)?;")
}

func TestGenerateMessage_NoExtensionRanges(t *testing.T) {
	f := testFile(schema.Proto3)
	m := testMessage(f, "Test")
	testField(m, "value", 1, schema.KindInt32, schema.Optional)

	result := generate(t, m)

	assert.NotContains(t, result, "__extensions")
	assert.Contains(t, result, ".check_and_try_add_field_to(&mut self.__unknown_fields)?")
	assert.Contains(t, result, ".or_skip()?")
	assert.Contains(t, result, "__unknown_fields: __prelude::UnknownFieldSet,")
}

func TestGenerateMessage_KeywordFieldName(t *testing.T) {
	f := testFile(schema.Proto2)
	m := testMessage(f, "Test")
	testField(m, "type", 1, schema.KindInt32, schema.Optional)

	result := generate(t, m)

	assert.Contains(t, result, "r#type: __prelude::Option<__prelude::i32>,")
	assert.Contains(t, result, "pub fn r#type(&self) -> __prelude::i32 {")
	assert.Contains(t, result, "pub const TYPE_NUMBER: __prelude::FieldNumber = unsafe { __prelude::FieldNumber::new_unchecked(1) };")
	// Prefixed accessors use the plain name, which no longer collides.
	assert.Contains(t, result, "pub fn has_type(&self) -> bool {")
	assert.Contains(t, result, "pub fn take_type(&mut self) -> __prelude::Option<__prelude::i32> {")
}

func TestGenerateMessage_EnumField(t *testing.T) {
	f := testFile(schema.Proto3)
	e := &schema.Enum{
		Name: "State",
		File: f,
		Values: []schema.EnumValue{
			{Name: "UNKNOWN", Number: 0},
			{Name: "ACTIVE", Number: 1},
		},
	}
	f.Enums = append(f.Enums, e)

	m := testMessage(f, "Test")
	fld := testField(m, "state", 1, schema.KindEnum, schema.Optional)
	fld.Enum = e

	result := generate(t, m)

	assert.Contains(t, result, "state: __file::State,")
	assert.Contains(t, result, "8 => field.merge_value::<__prelude::pr::Enum<__file::State>>(Self::STATE_NUMBER, &mut self.state)?,")
	assert.Contains(t, result, "pub const STATE_DEFAULT: __file::State = __file::State::UNKNOWN;")
}
