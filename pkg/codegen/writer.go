package codegen

import (
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/codegen/template"
)

// CodeWriter collects generated lines. Rendered code may contain
// %TAB% indentation markers at line starts, which are resolved
// relative to the current indentation of the writer.
type CodeWriter struct {
	buf    strings.Builder
	indent int
	tab    string
}

func NewCodeWriter(spaces bool) *CodeWriter {
	tab := "\t"
	if spaces {
		tab = "    "
	}
	return &CodeWriter{tab: tab}
}

func (w *CodeWriter) Indent() {
	w.indent++
}

func (w *CodeWriter) Unindent() {
	if w.indent > 0 {
		w.indent--
	}
}

// Write writes rendered code line by line. Lines are trimmed and
// empty lines are omitted.
func (w *CodeWriter) Write(code string) {
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		level := 0
		for strings.HasPrefix(line, template.TAB) {
			level++
			line = strings.TrimSpace(strings.TrimPrefix(line, template.TAB))
		}
		if line == "" {
			continue
		}
		w.WriteLine(strings.Repeat(w.tab, level) + line)
	}
}

// WriteLine writes a single line with the current indentation.
func (w *CodeWriter) WriteLine(line string) {
	w.buf.WriteString(strings.Repeat(w.tab, w.indent))
	w.buf.WriteString(line)
	w.buf.WriteString("\n")
}

func (w *CodeWriter) BlankLine() {
	w.buf.WriteString("\n")
}

func (w *CodeWriter) String() string {
	return w.buf.String()
}

func (w *CodeWriter) Bytes() []byte {
	return []byte(w.buf.String())
}

func (w *CodeWriter) Len() int {
	return w.buf.Len()
}
