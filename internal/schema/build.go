// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package schema

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// Build constructs the resolved schema graph from descriptor protos. The
// input is expected in dependency order (imports before importers), as
// protoc delivers it, and to have passed protoc's own validation; Build
// only verifies that every cross-type reference resolves to exactly one
// known symbol.
func Build(protos []*descriptorpb.FileDescriptorProto) ([]*File, error) {
	b := &builder{
		files:    make(map[string]*File, len(protos)),
		messages: make(map[string]*Message),
		enums:    make(map[string]*Enum),
	}

	files := make([]*File, 0, len(protos))
	for _, fd := range protos {
		f, err := b.addFile(fd)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	if err := b.resolve(); err != nil {
		return nil, err
	}
	return files, nil
}

// builder carries the symbol table keyed by fully-qualified type path and
// the fields whose type references still need resolving.
type builder struct {
	files    map[string]*File
	messages map[string]*Message
	enums    map[string]*Enum

	pending []pendingField
}

type pendingField struct {
	field *Field
	desc  *descriptorpb.FieldDescriptorProto
}

func (b *builder) addFile(fd *descriptorpb.FileDescriptorProto) (*File, error) {
	name := fd.GetName()
	if _, ok := b.files[name]; ok {
		return nil, fmt.Errorf("duplicate file %q", name)
	}

	f := &File{
		Name:    name,
		Package: fd.GetPackage(),
		Syntax:  Proto2,
	}
	if fd.GetSyntax() == "proto3" {
		f.Syntax = Proto3
	}

	for _, dep := range fd.GetDependency() {
		imp, ok := b.files[dep]
		if !ok {
			return nil, fmt.Errorf("file %q imports unknown file %q", name, dep)
		}
		f.Imports = append(f.Imports, imp)
	}

	for _, md := range fd.GetMessageType() {
		m, err := b.addMessage(md, f, nil)
		if err != nil {
			return nil, err
		}
		f.Messages = append(f.Messages, m)
	}
	for _, ed := range fd.GetEnumType() {
		e, err := b.addEnum(ed, f, nil)
		if err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, e)
	}
	for _, xd := range fd.GetExtension() {
		f.Extensions = append(f.Extensions, b.addField(xd, f, nil))
	}

	b.files[name] = f
	return f, nil
}

func (b *builder) addMessage(md *descriptorpb.DescriptorProto, f *File, parent *Message) (*Message, error) {
	m := &Message{
		Name:               md.GetName(),
		File:               f,
		Parent:             parent,
		MapEntry:           md.GetOptions().GetMapEntry(),
		HasExtensionRanges: len(md.GetExtensionRange()) > 0,
	}

	if err := b.register(m.FullName(), m, nil); err != nil {
		return nil, err
	}

	for _, fd := range md.GetField() {
		m.Fields = append(m.Fields, b.addField(fd, f, m))
	}
	for _, nd := range md.GetNestedType() {
		n, err := b.addMessage(nd, f, m)
		if err != nil {
			return nil, err
		}
		m.Nested = append(m.Nested, n)
	}
	for _, ed := range md.GetEnumType() {
		e, err := b.addEnum(ed, f, m)
		if err != nil {
			return nil, err
		}
		m.Enums = append(m.Enums, e)
	}
	for _, xd := range md.GetExtension() {
		m.Extensions = append(m.Extensions, b.addField(xd, f, m))
	}

	return m, nil
}

func (b *builder) addEnum(ed *descriptorpb.EnumDescriptorProto, f *File, parent *Message) (*Enum, error) {
	e := &Enum{
		Name:   ed.GetName(),
		File:   f,
		Parent: parent,
	}
	for _, vd := range ed.GetValue() {
		e.Values = append(e.Values, EnumValue{
			Name:   vd.GetName(),
			Number: vd.GetNumber(),
		})
	}

	if err := b.register(e.FullName(), nil, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (b *builder) addField(fd *descriptorpb.FieldDescriptorProto, f *File, parent *Message) *Field {
	field := &Field{
		Name:    fd.GetName(),
		Number:  fd.GetNumber(),
		Kind:    Kind(fd.GetType()),
		Label:   Label(fd.GetLabel()),
		Default: fd.GetDefaultValue(),
		Parent:  parent,
		File:    f,
	}
	if fd.Options != nil && fd.Options.Packed != nil {
		packed := fd.Options.GetPacked()
		field.Packed = &packed
	}

	b.pending = append(b.pending, pendingField{field: field, desc: fd})
	return field
}

func (b *builder) register(fullName string, m *Message, e *Enum) error {
	if _, ok := b.messages[fullName]; ok {
		return fmt.Errorf("duplicate type %q", fullName)
	}
	if _, ok := b.enums[fullName]; ok {
		return fmt.Errorf("duplicate type %q", fullName)
	}
	if m != nil {
		b.messages[fullName] = m
	} else {
		b.enums[fullName] = e
	}
	return nil
}

// resolve binds every pending type and extendee reference. Descriptor type
// names are fully qualified with a leading dot once protoc has compiled the
// file set.
func (b *builder) resolve() error {
	for _, p := range b.pending {
		field, fd := p.field, p.desc

		if typeName := fd.GetTypeName(); typeName != "" {
			key := strings.TrimPrefix(typeName, ".")
			switch field.Kind {
			case KindMessage, KindGroup:
				m, ok := b.messages[key]
				if !ok {
					return fmt.Errorf("field %q references unknown message %q", field.Name, typeName)
				}
				field.Message = m
			case KindEnum:
				e, ok := b.enums[key]
				if !ok {
					return fmt.Errorf("field %q references unknown enum %q", field.Name, typeName)
				}
				field.Enum = e
			default:
				return fmt.Errorf("field %q has type name %q but scalar kind %v", field.Name, typeName, field.Kind)
			}
		}

		if extendee := fd.GetExtendee(); extendee != "" {
			key := strings.TrimPrefix(extendee, ".")
			m, ok := b.messages[key]
			if !ok {
				return fmt.Errorf("extension %q extends unknown message %q", field.Name, extendee)
			}
			field.Extendee = m
		}
	}
	return nil
}
