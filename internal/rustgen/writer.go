// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"fmt"
	"strings"
)

// writer accumulates one generated source unit. Indentation is applied
// lazily at the start of each line so blank lines stay empty.
type writer struct {
	sb      strings.Builder
	indent  int
	newLine bool
}

func newWriter() *writer {
	return &writer{newLine: true}
}

func (w *writer) push() {
	w.indent++
}

func (w *writer) pop() {
	w.indent--
}

// line writes one line followed by a newline. An empty string produces a
// blank line with no indentation.
func (w *writer) line(s string) {
	if s != "" {
		w.checkNewLine()
		w.sb.WriteString(s)
	}
	w.sb.WriteByte('\n')
	w.newLine = true
}

func (w *writer) linef(format string, args ...any) {
	w.line(fmt.Sprintf(format, args...))
}

// raw writes a string verbatim with no indentation handling. Used for
// pre-formatted blocks such as the manifest disclaimer.
func (w *writer) raw(s string) {
	w.sb.WriteString(s)
	w.newLine = strings.HasSuffix(s, "\n")
}

func (w *writer) checkNewLine() {
	if w.newLine {
		w.newLine = false
		for i := 0; i < w.indent; i++ {
			w.sb.WriteString("  ")
		}
	}
}

func (w *writer) String() string {
	return w.sb.String()
}

func (w *writer) Bytes() []byte {
	return []byte(w.sb.String())
}
