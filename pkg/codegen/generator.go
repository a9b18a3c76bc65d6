package codegen

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/formbuilder/pkg/codegen/template"
	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

// Template names evaluated by the generator.
const (
	TPL_HEADER_PREAMBLE = "header_preamble"
	TPL_HEADER_EPILOGUE = "header_epilogue"
	TPL_SOURCE_PREAMBLE = "source_preamble"
	TPL_SOURCE_EPILOGUE = "source_epilogue"
	TPL_INCLUDE         = "include"
	TPL_DECLARATION     = "declaration"
	TPL_CLASS_BEGIN     = "class_begin"
	TPL_CLASS_END       = "class_end"
	TPL_CONS_DECL       = "cons_decl"
	TPL_CONS_DEF        = "cons_def"
	TPL_CONS_DEF_END    = "cons_def_end"
	TPL_DESTRUCTOR      = "destructor"
	TPL_CONSTRUCTION    = "construction"
	TPL_SETTINGS        = "settings"
	TPL_AFTER_ADDCHILD  = "after_addchild"
	TPL_AFTER_SPLIT     = "after_addchild_split"
	TPL_EVENT_CONNECT   = "evt_connect_"
)

const (
	PROP_PERMISSION = "permission"
	PERMISSION_NONE = "none"
	TYPE_FORM       = "form"
	TYPE_SPLITTER   = "splitter"
)

var permissions = []string{"private", "protected", "public"}

// File is a generated file.
type File struct {
	Name    string
	Content []byte
}

// Enabled reports whether code generation for a language is
// selected in the project's code_generation property. Projects
// without this property generate all languages.
func Enabled(project *objectbase.Object, lang string) bool {
	p := project.Property(PROP_CODE_GENERATION)
	if p == nil {
		return true
	}
	return slices.Contains(p.AsBitlist(), lang)
}

// Generator renders the code for all forms of a project.
type Generator struct {
	lang     Language
	project  *objectbase.Object
	renderer *template.Renderer
}

// NewGenerator creates a generator. A nil cache uses a private one.
func NewGenerator(lang Language, project *objectbase.Object, cache *template.Cache) *Generator {
	return &Generator{
		lang:     lang,
		project:  project,
		renderer: template.NewRenderer(lang, project, cache),
	}
}

func (g *Generator) Language() Language {
	return g.lang
}

// BaseName returns the file name without extension.
func (g *Generator) BaseName() string {
	if f := g.project.PropertyValue(PROP_FILE); f != "" {
		return f
	}
	return "noname"
}

// Generate renders all files of the project for the language.
func (g *Generator) Generate() ([]File, error) {
	log.Debug("generating {{language}} code for {{project}}", "language", g.lang.Name(), "project", g.project.String())
	exts := g.lang.Extensions()
	if len(exts) == 2 {
		header, err := g.generateHeader()
		if err != nil {
			return nil, err
		}
		source, err := g.generateSource()
		if err != nil {
			return nil, err
		}
		return []File{
			{Name: g.BaseName() + exts[0], Content: header.Bytes()},
			{Name: g.BaseName() + exts[1], Content: source.Bytes()},
		}, nil
	}
	source, err := g.generateSource()
	if err != nil {
		return nil, err
	}
	return []File{{Name: g.BaseName() + exts[0], Content: source.Bytes()}}, nil
}

func (g *Generator) newWriter() *CodeWriter {
	w := NewCodeWriter(g.lang.Options().IndentWithSpaces)
	w.WriteLine(g.lang.Comment() + " Code generated by fbgen. DO NOT EDIT.")
	w.BlankLine()
	return w
}

// render renders a template of the class of obj (or one of its base
// classes). Missing templates render to nothing.
func (g *Generator) render(obj *objectbase.Object, name string) (string, error) {
	return g.renderWith(obj, name, "", "")
}

func (g *Generator) renderWith(obj *objectbase.Object, name, pred, npred string) (string, error) {
	text := template.FindClassTemplate(obj.Info(), g.lang.Name(), name)
	if text == "" {
		log.Trace("no template {{template}} for {{object}}", "template", name, "object", obj.String())
		return "", nil
	}
	code, err := g.renderer.RenderWith(text, obj, pred, npred)
	if err != nil {
		return "", errors.Wrapf(err, "template %q of %s", name, obj)
	}
	return code, nil
}

func (g *Generator) write(w *CodeWriter, obj *objectbase.Object, name string) error {
	code, err := g.render(obj, name)
	if err != nil {
		return err
	}
	w.Write(code)
	return nil
}

func (g *Generator) forms() []*objectbase.Object {
	var forms []*objectbase.Object
	for _, c := range g.project.Children() {
		if c.ObjectTypeName() == TYPE_FORM {
			forms = append(forms, c)
		}
	}
	return forms
}

////////////////////////////////////////////////////////////////////////////////

func (g *Generator) generateHeader() (*CodeWriter, error) {
	w := g.newWriter()
	if err := g.write(w, g.project, TPL_HEADER_PREAMBLE); err != nil {
		return nil, err
	}
	if err := g.includes(w); err != nil {
		return nil, err
	}
	for _, form := range g.forms() {
		w.BlankLine()
		if err := g.classDeclaration(w, form); err != nil {
			return nil, err
		}
	}
	w.BlankLine()
	if err := g.write(w, g.project, TPL_HEADER_EPILOGUE); err != nil {
		return nil, err
	}
	return w, nil
}

// includes writes the unique, sorted include lines of all objects.
func (g *Generator) includes(w *CodeWriter) error {
	lines := sets.New[string]()
	var err error
	g.project.Walk(func(o *objectbase.Object) bool {
		if err != nil {
			return false
		}
		var code string
		code, err = g.render(o, TPL_INCLUDE)
		for _, l := range strings.Split(code, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines.Insert(l)
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	for _, l := range sets.List(lines) {
		w.WriteLine(l)
	}
	return nil
}

func (g *Generator) classDeclaration(w *CodeWriter, form *objectbase.Object) error {
	if err := g.write(w, form, TPL_CLASS_BEGIN); err != nil {
		return err
	}
	w.Indent()
	decls, err := g.declarations(form)
	if err != nil {
		return err
	}
	stubs := g.handlerStubs(form)
	for _, perm := range permissions {
		lines := decls[perm]
		if perm == "protected" && len(stubs) > 0 {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, g.lang.Comment()+" Virtual event handlers, override them in your derived class")
			lines = append(lines, stubs...)
		}
		if perm != "public" && len(lines) == 0 {
			continue
		}
		w.WriteLine(perm + ":")
		w.Indent()
		for _, l := range lines {
			if l == "" {
				w.BlankLine()
				continue
			}
			w.Write(l)
		}
		if perm == "public" {
			if len(lines) > 0 {
				w.BlankLine()
			}
			if err := g.write(w, form, TPL_CONS_DECL); err != nil {
				return err
			}
		}
		w.Unindent()
		w.BlankLine()
	}
	w.Unindent()
	return g.write(w, form, TPL_CLASS_END)
}

// declarations renders the member declarations of all objects of a
// form grouped by permission. Objects named like array elements
// contribute one declaration for the whole array.
func (g *Generator) declarations(form *objectbase.Object) (map[string][]string, error) {
	result := map[string][]string{}
	arrays := FindArrayObjects(form, true)
	done := sets.New[string]()

	var err error
	form.Walk(func(o *objectbase.Object) bool {
		if err != nil {
			return false
		}
		if o == form {
			return true
		}
		p := o.Property(PROP_PERMISSION)
		if p == nil || p.Value() == PERMISSION_NONE {
			return true
		}
		var code string
		code, err = g.render(o, TPL_DECLARATION)
		if err != nil || code == "" {
			return err == nil
		}
		if base, _, ok := ParseArrayName(o.Name()); ok {
			if done.Has(base) {
				return true
			}
			done.Insert(base)
			a := arrays[base]
			code = strings.Replace(code, o.Name(), a.Name+a.Dimensions(), 1)
		}
		result[p.Value()] = append(result[p.Value()], code)
		return true
	})
	return result, err
}

type handler struct {
	name       string
	eventClass string
}

func (g *Generator) handlers(form *objectbase.Object) []handler {
	var list []handler
	seen := sets.New[string]()
	form.Walk(func(o *objectbase.Object) bool {
		for _, e := range o.Events() {
			h := strings.TrimSpace(e.Value())
			if h == "" || seen.Has(h) {
				continue
			}
			seen.Insert(h)
			list = append(list, handler{name: h, eventClass: e.Info().EventClass()})
		}
		return true
	})
	return list
}

func (g *Generator) handlerStubs(form *objectbase.Object) []string {
	var lines []string
	for _, h := range g.handlers(form) {
		lines = append(lines, strings.Join(g.lang.HandlerStub(h.name, h.eventClass), "\n"))
	}
	return lines
}

////////////////////////////////////////////////////////////////////////////////

func (g *Generator) generateSource() (*CodeWriter, error) {
	w := g.newWriter()
	if err := g.write(w, g.project, TPL_SOURCE_PREAMBLE); err != nil {
		return nil, err
	}
	if len(g.lang.Extensions()) == 1 {
		if err := g.includes(w); err != nil {
			return nil, err
		}
	}
	for _, form := range g.forms() {
		w.BlankLine()
		if err := g.classDefinition(w, form); err != nil {
			return nil, err
		}
	}
	w.BlankLine()
	if err := g.write(w, g.project, TPL_SOURCE_EPILOGUE); err != nil {
		return nil, err
	}
	return w, nil
}

func (g *Generator) classDefinition(w *CodeWriter, form *objectbase.Object) error {
	split := len(g.lang.Extensions()) == 2
	if !split {
		if err := g.write(w, form, TPL_CLASS_BEGIN); err != nil {
			return err
		}
	}
	if g.lang.ClassIndent() {
		w.Indent()
	}

	if err := g.write(w, form, TPL_CONS_DEF); err != nil {
		return err
	}
	if g.lang.BodyIndent() {
		w.Indent()
	}
	if err := g.settings(w, form); err != nil {
		return err
	}
	for _, c := range form.Children() {
		if err := g.GenConstruction(w, c); err != nil {
			return err
		}
	}
	if err := g.afterAddChild(w, form); err != nil {
		return err
	}
	if err := g.connectEvents(w, form); err != nil {
		return err
	}
	if g.lang.BodyIndent() {
		w.Unindent()
	}
	if err := g.write(w, form, TPL_CONS_DEF_END); err != nil {
		return err
	}

	if code, err := g.render(form, TPL_DESTRUCTOR); err != nil {
		return err
	} else if code != "" {
		w.BlankLine()
		w.Write(code)
	}

	if !split {
		if stubs := g.handlerStubs(form); len(stubs) > 0 {
			w.BlankLine()
			w.WriteLine(g.lang.Comment() + " Virtual event handlers, override them in your derived class")
			for _, s := range stubs {
				w.Write(s)
				w.BlankLine()
			}
		}
	}

	if g.lang.ClassIndent() {
		w.Unindent()
	}
	if !split {
		return g.write(w, form, TPL_CLASS_END)
	}
	return nil
}

// GenConstruction writes the construction code of an object and its
// descendants: construction, settings of the class and all base classes,
// the children and finally the after_addchild code.
func (g *Generator) GenConstruction(w *CodeWriter, obj *objectbase.Object) error {
	if !obj.IsItem() {
		if err := g.write(w, obj, TPL_CONSTRUCTION); err != nil {
			return err
		}
		if err := g.settings(w, obj); err != nil {
			return err
		}
	}
	for _, c := range obj.Children() {
		if err := g.GenConstruction(w, c); err != nil {
			return err
		}
	}
	return g.afterAddChild(w, obj)
}

// settings writes the settings templates of the class and its base
// classes, each distinct template once. Forms refer to themselves
// differently than to their members, so they only get the settings of
// their own class.
func (g *Generator) settings(w *CodeWriter, obj *objectbase.Object) error {
	seen := sets.New[*metamodel.ObjectInfo]()
	var visit func(info *metamodel.ObjectInfo) error
	visit = func(info *metamodel.ObjectInfo) error {
		if seen.Has(info) {
			return nil
		}
		seen.Insert(info)
		if text := info.CodeInfo(g.lang.Name()).Template(TPL_SETTINGS); text != "" {
			code, err := g.renderer.RenderText(text, obj)
			if err != nil {
				return errors.Wrapf(err, "settings of %s for %s", info.ClassName(), obj)
			}
			w.Write(code)
		}
		if obj.ObjectTypeName() == TYPE_FORM {
			return nil
		}
		for _, b := range info.BaseClasses() {
			if err := visit(b); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(obj.Info())
}

// afterAddChild writes the code finishing an object after its children
// have been constructed. Items prefer a template specific for the type
// of their child, splitters get the names of their panes as #pred
// and #npred.
func (g *Generator) afterAddChild(w *CodeWriter, obj *objectbase.Object) error {
	name := TPL_AFTER_ADDCHILD
	pred, npred := "", ""
	switch {
	case obj.IsItem() && obj.ChildCount() > 0:
		specific := TPL_AFTER_ADDCHILD + "_" + obj.Child(0).ObjectTypeName()
		if template.FindClassTemplate(obj.Info(), g.lang.Name(), specific) != "" {
			name = specific
		}
	case obj.ObjectTypeName() == TYPE_SPLITTER:
		panes := g.panes(obj)
		switch len(panes) {
		case 0:
			return nil
		case 1:
			pred = panes[0]
		default:
			name = TPL_AFTER_SPLIT
			pred, npred = panes[0], panes[1]
		}
	}
	code, err := g.renderWith(obj, name, pred, npred)
	if err != nil {
		return err
	}
	w.Write(code)
	return nil
}

func (g *Generator) panes(splitter *objectbase.Object) []string {
	var panes []string
	for _, c := range splitter.Children() {
		if p := c.NonItemChild(); p != c {
			panes = append(panes, g.lang.ValueToCode(metamodel.PT_WXPARENT, p.Name()))
		}
	}
	return panes
}

// connectEvents writes the event bindings for all handlers of a form.
func (g *Generator) connectEvents(w *CodeWriter, form *objectbase.Object) error {
	var err error
	form.Walk(func(o *objectbase.Object) bool {
		if err != nil {
			return false
		}
		for _, e := range o.Events() {
			h := strings.TrimSpace(e.Value())
			if h == "" {
				continue
			}
			var code string
			code, err = g.renderWith(o, TPL_EVENT_CONNECT+e.Name(), h, "")
			if err != nil {
				return false
			}
			if code == "" {
				log.Warn("no binding for event {{event}} of {{object}} in {{language}}", "event", e.Name(), "object", o.String(), "language", g.lang.Name())
			}
			w.Write(code)
		}
		return true
	})
	return err
}

////////////////////////////////////////////////////////////////////////////////

// Generate renders the code for all selected languages of a project
// and writes the files to a directory of the given filesystem. An empty
// language list uses the project's code_generation property.
func Generate(fs vfs.FileSystem, dir string, project *objectbase.Object, cache *template.Cache, langs ...string) ([]string, error) {
	if len(langs) == 0 {
		for _, l := range LanguageNames() {
			if Enabled(project, l) {
				langs = append(langs, l)
			}
		}
	}
	if cache == nil {
		cache = template.NewCache()
	}
	opts := OptionsFromProject(project)

	var written []string
	for _, name := range langs {
		lang, err := NewLanguage(name, opts)
		if err != nil {
			return written, err
		}
		files, err := NewGenerator(lang, project, cache).Generate()
		if err != nil {
			return written, errors.Wrapf(err, "%s code generation", lang.Name())
		}
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return written, err
		}
		for _, f := range files {
			p := path.Join(dir, f.Name)
			if err := vfs.WriteFile(fs, p, f.Content, 0o644); err != nil {
				return written, fmt.Errorf("cannot write %s: %w", p, err)
			}
			written = append(written, p)
		}
	}
	return written, nil
}
