// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"fmt"
	"strings"

	"github.com/ObsidianMinor/protrust/internal/schema"
)

// rustKeywords is the set of identifiers that must be raw-escaped in
// generated output. Includes reserved-for-future keywords.
var rustKeywords = map[string]struct{}{
	"as": {}, "break": {}, "const": {}, "continue": {}, "else": {},
	"enum": {}, "false": {}, "fn": {}, "for": {}, "if": {}, "impl": {},
	"in": {}, "let": {}, "loop": {}, "match": {}, "mod": {}, "move": {},
	"mut": {}, "pub": {}, "ref": {}, "return": {}, "static": {},
	"struct": {}, "trait": {}, "true": {}, "type": {}, "unsafe": {},
	"use": {}, "where": {}, "while": {}, "dyn": {}, "abstract": {},
	"become": {}, "box": {}, "do": {}, "final": {}, "macro": {},
	"override": {}, "priv": {}, "typeof": {}, "unsized": {},
	"virtual": {}, "yield": {}, "async": {}, "await": {}, "try": {},
}

// Escape returns a collision-safe source identifier. Keywords get the raw
// identifier prefix; anything else passes through unchanged, so the
// function is idempotent on already-safe names.
func Escape(s string) string {
	if _, ok := rustKeywords[s]; ok {
		return "r#" + s
	}
	return s
}

// MessageModName converts a message's capitalized name to the
// lowercase-underscore module name used for its nested types. An
// underscore is inserted before each uppercase letter except within a run
// of consecutive uppercase letters: "InnerType" becomes "inner_type",
// "URLValue" becomes "urlvalue".
func MessageModName(name string) string {
	var sb strings.Builder
	lastUpper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			if i != 0 && !lastUpper {
				sb.WriteByte('_')
			}
			sb.WriteByte(c + ('a' - 'A'))
			lastUpper = true
		} else {
			sb.WriteByte(c)
			lastUpper = false
		}
	}
	return sb.String()
}

// FileModName derives the module alias for a schema file from its path:
// every non-alphanumeric character becomes an underscore, so
// "google/protobuf/descriptor.proto" becomes
// "google_protobuf_descriptor_proto".
func FileModName(fileName string) string {
	var sb strings.Builder
	for i := 0; i < len(fileName); i++ {
		c := fileName[i]
		if ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// FieldNumberName is the SCREAMING-case constant name holding a field's
// number, e.g. "source_code_info" -> "SOURCE_CODE_INFO_NUMBER".
func FieldNumberName(fieldName string) string {
	return strings.ToUpper(fieldName) + "_NUMBER"
}

// FieldDefaultName is the SCREAMING-case constant name holding a field's
// default value under proto2.
func FieldDefaultName(fieldName string) string {
	return strings.ToUpper(fieldName) + "_DEFAULT"
}

// extensionName is the static item name for a generated extension field.
func extensionName(fieldName string) string {
	return strings.ToUpper(fieldName)
}

// messagePath resolves a message reference into a Rust path rooted at the
// referencing file's module: "__file::", then an "__imports" hop when the
// referent lives in another file, then the lowercase module of each
// containing message, ending in the (escaped, unconverted) type name.
func messagePath(from *schema.File, m *schema.Message) string {
	return typePath(from, m.File, m.Parents(), m.Name)
}

// enumPath resolves an enum reference the same way messagePath does.
func enumPath(from *schema.File, e *schema.Enum) string {
	var parents []*schema.Message
	if e.Parent != nil {
		parents = append(e.Parent.Parents(), e.Parent)
	}
	return typePath(from, e.File, parents, e.Name)
}

func typePath(from, target *schema.File, parents []*schema.Message, name string) string {
	var sb strings.Builder
	sb.WriteString("__file::")
	if from != target {
		sb.WriteString("__imports::")
		sb.WriteString(FileModName(target.Name))
		sb.WriteString("::")
	}
	for _, p := range parents {
		sb.WriteString(MessageModName(p.Name))
		sb.WriteString("::")
	}
	sb.WriteString(Escape(name))
	return sb.String()
}

// rustType is the Rust type a field's value is stored as, before any
// cardinality or presence wrapper is applied.
func rustType(f *schema.Field) string {
	switch f.Kind {
	case schema.KindBool:
		return "__prelude::bool"
	case schema.KindBytes:
		return "__prelude::ByteVec"
	case schema.KindDouble:
		return "__prelude::f64"
	case schema.KindFloat:
		return "__prelude::f32"
	case schema.KindFixed32, schema.KindUint32:
		return "__prelude::u32"
	case schema.KindFixed64, schema.KindUint64:
		return "__prelude::u64"
	case schema.KindInt32, schema.KindSfixed32, schema.KindSint32:
		return "__prelude::i32"
	case schema.KindInt64, schema.KindSfixed64, schema.KindSint64:
		return "__prelude::i64"
	case schema.KindString:
		return "__prelude::String"
	case schema.KindEnum:
		return enumPath(f.File, f.Enum)
	case schema.KindMessage, schema.KindGroup:
		return messagePath(f.File, f.Message)
	default:
		return ""
	}
}

// rawType is the codec type parameter the runtime reads and writes the
// field through.
func rawType(f *schema.Field) string {
	switch f.Kind {
	case schema.KindBool:
		return "__prelude::pr::Bool"
	case schema.KindBytes:
		return "__prelude::pr::Bytes<" + rustType(f) + ">"
	case schema.KindDouble:
		return "__prelude::pr::Double"
	case schema.KindFloat:
		return "__prelude::pr::Float"
	case schema.KindFixed32:
		return "__prelude::pr::Fixed32"
	case schema.KindFixed64:
		return "__prelude::pr::Fixed64"
	case schema.KindSfixed32:
		return "__prelude::pr::Sfixed32"
	case schema.KindSfixed64:
		return "__prelude::pr::Sfixed64"
	case schema.KindSint32:
		return "__prelude::pr::Sint32"
	case schema.KindSint64:
		return "__prelude::pr::Sint64"
	case schema.KindInt32:
		return "__prelude::pr::Int32"
	case schema.KindInt64:
		return "__prelude::pr::Int64"
	case schema.KindUint32:
		return "__prelude::pr::Uint32"
	case schema.KindUint64:
		return "__prelude::pr::Uint64"
	case schema.KindString:
		return "__prelude::pr::String"
	case schema.KindEnum:
		return "__prelude::pr::Enum<" + rustType(f) + ">"
	case schema.KindMessage:
		return "__prelude::pr::Message<" + rustType(f) + ">"
	case schema.KindGroup:
		return "__prelude::pr::Group<" + rustType(f) + ">"
	default:
		return ""
	}
}

// isCopyable reports whether the field's Rust type is Copy, which decides
// the shape of the proto2 getter.
func isCopyable(k schema.Kind) bool {
	switch k {
	case schema.KindString, schema.KindBytes, schema.KindMessage, schema.KindGroup:
		return false
	}
	return true
}

// defaultType is the type of the generated default constant.
func defaultType(f *schema.Field) string {
	switch f.Kind {
	case schema.KindBytes:
		return "&'static [__prelude::u8]"
	case schema.KindString:
		return "&'static __prelude::str"
	default:
		return rustType(f)
	}
}

// defaultTypeRef is the getter's return type: a borrow for string/bytes,
// the value type otherwise.
func defaultTypeRef(f *schema.Field) string {
	switch f.Kind {
	case schema.KindBytes:
		return "&[__prelude::u8]"
	case schema.KindString:
		return "&__prelude::str"
	default:
		return rustType(f)
	}
}

// defaultValue renders the field's default as a Rust literal. Fields with
// no declared default use the type's zero value; enum fields fall back to
// the first declared constant per the proto2 rule.
func defaultValue(f *schema.Field) string {
	switch f.Kind {
	case schema.KindBool:
		if f.Default == "true" {
			return "true"
		}
		return "false"
	case schema.KindString:
		return `"` + escapeStringLiteral(f.Default) + `"`
	case schema.KindBytes:
		return `b"` + escapeBytesLiteral(f.Default) + `"`
	case schema.KindDouble, schema.KindFloat:
		return floatLiteral(f.Default)
	case schema.KindEnum:
		name := f.Default
		if name == "" && len(f.Enum.Values) > 0 {
			name = f.Enum.Values[0].Name
		}
		return enumPath(f.File, f.Enum) + "::" + Escape(name)
	default:
		if f.Default == "" {
			return "0"
		}
		return f.Default
	}
}

// escapeStringLiteral makes a declared string default safe inside a
// double-quoted literal.
func escapeStringLiteral(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u{%x}`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// escapeBytesLiteral makes a declared bytes default safe inside a byte
// string literal, which only admits printable ASCII unescaped.
func escapeBytesLiteral(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			if c < 0x20 || c > 0x7e {
				fmt.Fprintf(&sb, `\x%02x`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// floatLiteral keeps descriptor float defaults valid as Rust literals,
// which require a fractional part or exponent.
func floatLiteral(s string) string {
	if s == "" {
		return "0.0"
	}
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}
