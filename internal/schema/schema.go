// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package schema models a fully resolved protobuf schema graph.
//
// The graph is built once from descriptor protos (see Build) and is
// immutable afterwards; generators only ever read it.
package schema

import "fmt"

// Syntax is the syntax variant a file was declared with.
type Syntax int

const (
	// Proto2 files have explicit field presence and required fields.
	Proto2 Syntax = iota
	// Proto3 files have implicit presence for singular scalar fields.
	Proto3
)

// Kind identifies a field's scalar kind. Values match the wire descriptor's
// type numbering so conversion from descriptor protos is a cast.
type Kind int

const (
	KindDouble Kind = iota + 1
	KindFloat
	KindInt64
	KindUint64
	KindInt32
	KindFixed64
	KindFixed32
	KindBool
	KindString
	KindGroup
	KindMessage
	KindBytes
	KindUint32
	KindEnum
	KindSfixed32
	KindSfixed64
	KindSint32
	KindSint64
)

var kindNames = map[Kind]string{
	KindDouble:   "double",
	KindFloat:    "float",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindInt32:    "int32",
	KindFixed64:  "fixed64",
	KindFixed32:  "fixed32",
	KindBool:     "bool",
	KindString:   "string",
	KindGroup:    "group",
	KindMessage:  "message",
	KindBytes:    "bytes",
	KindUint32:   "uint32",
	KindEnum:     "enum",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label is a field's cardinality as declared in the schema.
type Label int

const (
	Optional Label = iota + 1
	Required
	Repeated
)

// File is one schema file with its resolved imports and top-level types.
type File struct {
	// Name is the file's path as written in the descriptor (e.g.
	// "google/protobuf/descriptor.proto").
	Name string

	// Package is the file's protobuf package, possibly empty.
	Package string

	Syntax Syntax

	Messages   []*Message
	Enums      []*Enum
	Extensions []*Field

	// Imports holds the resolved files this file depends on, in
	// declaration order.
	Imports []*File
}

// Message is one message type, top-level or nested.
type Message struct {
	Name   string
	File   *File
	Parent *Message // nil for top-level messages

	Fields     []*Field
	Nested     []*Message
	Enums      []*Enum
	Extensions []*Field

	// MapEntry marks the synthetic key/value entry message backing a map
	// field.
	MapEntry bool

	// HasExtensionRanges is true when the message reserves field numbers
	// for externally declared fields.
	HasExtensionRanges bool
}

// FullName returns the dotted fully-qualified name, including the package.
func (m *Message) FullName() string {
	if m.Parent != nil {
		return m.Parent.FullName() + "." + m.Name
	}
	if m.File.Package != "" {
		return m.File.Package + "." + m.Name
	}
	return m.Name
}

// Parents returns the chain of containing messages, outermost first.
func (m *Message) Parents() []*Message {
	var chain []*Message
	for p := m.Parent; p != nil; p = p.Parent {
		chain = append([]*Message{p}, chain...)
	}
	return chain
}

// FieldByNumber returns the field with the given number, or nil.
func (m *Message) FieldByNumber(n int32) *Field {
	for _, f := range m.Fields {
		if f.Number == n {
			return f
		}
	}
	return nil
}

// HasInnerItems reports whether the message declares anything that needs a
// nested module: nested messages (map entries excluded), enums, or
// extensions.
func (m *Message) HasInnerItems() bool {
	for _, n := range m.Nested {
		if !n.MapEntry {
			return true
		}
	}
	return len(m.Enums) > 0 || len(m.Extensions) > 0
}

// Enum is one enum type, top-level or nested.
type Enum struct {
	Name   string
	File   *File
	Parent *Message // nil for top-level enums

	Values []EnumValue
}

// FullName returns the dotted fully-qualified name, including the package.
func (e *Enum) FullName() string {
	if e.Parent != nil {
		return e.Parent.FullName() + "." + e.Name
	}
	if e.File.Package != "" {
		return e.File.Package + "." + e.Name
	}
	return e.Name
}

// EnumValue is one declared enum constant. Numbers need not be unique
// within an enum.
type EnumValue struct {
	Name   string
	Number int32
}

// Field is one field declaration: a member of a message, or an extension
// declared at file or message scope.
type Field struct {
	Name   string
	Number int32
	Kind   Kind
	Label  Label

	// Packed is the explicit packed option, or nil when the file's syntax
	// default applies.
	Packed *bool

	// Default is the proto2 default value literal from the schema, empty
	// when none was declared.
	Default string

	// Parent is the containing message. It is nil for file-level
	// extensions.
	Parent *Message
	File   *File

	// Extendee is the extended message for extension fields, nil
	// otherwise.
	Extendee *Message

	// Message and Enum are the resolved referents for message/group and
	// enum kinds.
	Message *Message
	Enum    *Enum
}

// IsRepeated reports whether the field holds a sequence of values. Map
// fields are repeated at the wire level.
func (f *Field) IsRepeated() bool {
	return f.Label == Repeated
}

// IsRequired reports whether the field is a proto2 required field.
func (f *Field) IsRequired() bool {
	return f.Label == Required
}

// IsMap reports whether the field is a map field, represented in the
// schema as a repeated synthetic entry message.
func (f *Field) IsMap() bool {
	return f.Kind == KindMessage && f.Message != nil && f.Message.MapEntry
}

// IsPackable reports whether the field may legally use packed encoding:
// repeated with a non-length-delimited scalar kind.
func (f *Field) IsPackable() bool {
	if !f.IsRepeated() {
		return false
	}
	switch f.Kind {
	case KindString, KindBytes, KindMessage, KindGroup:
		return false
	}
	return true
}

// IsPacked reports the field's canonical encoding: the explicit packed
// option when present, otherwise the syntax default (packed under proto3).
func (f *Field) IsPacked() bool {
	if !f.IsPackable() {
		return false
	}
	if f.Packed != nil {
		return *f.Packed
	}
	return f.File.Syntax == Proto3
}

// MapKey returns the key field of a map field's entry message.
func (f *Field) MapKey() *Field {
	return f.Message.FieldByNumber(1)
}

// MapValue returns the value field of a map field's entry message.
func (f *Field) MapValue() *Field {
	return f.Message.FieldByNumber(2)
}
