package codegen

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/codegen/template"
	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/utils"
)

// Language names as used for code template files and the
// project's code_generation property.
const (
	LANG_CPP    = "C++"
	LANG_PYTHON = "Python"
	LANG_PHP    = "PHP"
	LANG_LUA    = "Lua"
)

// Language is a code generation target.
type Language interface {
	template.Language

	// Short is the command line name of the language.
	Short() string
	// Extensions lists the generated file extensions. The first one
	// is used for the declaration file, if there are two.
	Extensions() []string
	// Comment is the line comment prefix.
	Comment() string
	// ClassIndent reports whether members are nested into the
	// class definition.
	ClassIndent() bool
	// BodyIndent reports whether the construction code is nested
	// into a function body.
	BodyIndent() bool
	// HandlerStub returns the lines of a default event handler.
	HandlerStub(handler, eventClass string) []string
	Options() Options
}

type factory func(opts Options) Language

var languages = map[string]factory{
	LANG_CPP:    func(opts Options) Language { return &cpp{base{LANG_CPP, "cpp", opts}} },
	LANG_PYTHON: func(opts Options) Language { return &python{base{LANG_PYTHON, "python", opts}} },
	LANG_PHP:    func(opts Options) Language { return &php{base{LANG_PHP, "php", opts}} },
	LANG_LUA:    func(opts Options) Language { return &lua{base{LANG_LUA, "lua", opts}} },
}

var shortNames = map[string]string{
	"cpp":    LANG_CPP,
	"c++":    LANG_CPP,
	"python": LANG_PYTHON,
	"py":     LANG_PYTHON,
	"php":    LANG_PHP,
	"lua":    LANG_LUA,
}

// LanguageNames returns the names of all supported languages.
func LanguageNames() []string {
	return []string{LANG_CPP, LANG_PYTHON, LANG_PHP, LANG_LUA}
}

// CanonicalLanguageName maps a language or short name to
// the language name.
func CanonicalLanguageName(name string) (string, bool) {
	if _, ok := languages[name]; ok {
		return name, true
	}
	n, ok := shortNames[strings.ToLower(name)]
	return n, ok
}

// NewLanguage returns the language for a language or short name.
func NewLanguage(name string, opts Options) (Language, error) {
	n, ok := CanonicalLanguageName(name)
	if !ok {
		return nil, fmt.Errorf("unknown language %q", name)
	}
	return languages[n](opts), nil
}

////////////////////////////////////////////////////////////////////////////////

type base struct {
	name  string
	short string
	opts  Options
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Short() string {
	return b.short
}

func (b *base) Options() Options {
	return b.opts
}

func (b *base) filePath(p string) string {
	if b.opts.RelativePath || b.opts.BasePath == "" || path.IsAbs(p) {
		return p
	}
	return path.Join(b.opts.BasePath, p)
}

// quote returns a double quoted string literal with C like escapes.
func quote(s string, extra ...rune) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
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
			if slices.Contains(extra, c) {
				sb.WriteByte('\\')
			}
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// symbols rewrites the wx prefix of all tokens of a '|' separated list.
func symbols(v string, prefix string, sep string) string {
	tokens := utils.SplitTrim(v, "|")
	if len(tokens) == 0 {
		return "0"
	}
	return utils.JoinFunc(tokens, sep, func(t string) string { return symbol(t, prefix) })
}

func symbol(t, prefix string) string {
	if strings.HasPrefix(t, "wx") && !utils.IsNumber(t) {
		return prefix + strings.TrimPrefix(t, "wx")
	}
	return t
}

func artBitmap(p string) (string, string) {
	f := objectbase.SplitParentValue(p)
	id := ""
	client := "wxART_OTHER"
	if len(f) > 0 {
		id = f[0]
	}
	if len(f) > 1 && f[1] != "" {
		client = f[1]
	}
	return id, client
}

////////////////////////////////////////////////////////////////////////////////

type cpp struct {
	base
}

func (l *cpp) Extensions() []string {
	return []string{".h", ".cpp"}
}

func (l *cpp) Comment() string {
	return "//"
}

func (l *cpp) ClassIndent() bool {
	return false
}

func (l *cpp) BodyIndent() bool {
	return true
}

func (l *cpp) HandlerStub(handler, eventClass string) []string {
	return []string{fmt.Sprintf("virtual void %s( %s& event ) { event.Skip(); }", handler, eventClass)}
}

func (l *cpp) RootWxParent(*objectbase.Object) string {
	return "this"
}

func (l *cpp) str(v string) string {
	if v == "" {
		return "wxEmptyString"
	}
	return "wxT(" + quote(v) + ")"
}

func (l *cpp) ValueToCode(t metamodel.PropertyType, v string) string {
	switch t {
	case metamodel.PT_WXPARENT:
		return v
	case metamodel.PT_WXPARENT_SB:
		return v + "->GetStaticBox()"
	case metamodel.PT_WXPARENT_CP:
		return v + "->GetPane()"
	case metamodel.PT_WXSTRING:
		return l.str(v)
	case metamodel.PT_FILE, metamodel.PT_PATH:
		return l.str(l.filePath(v))
	case metamodel.PT_WXSTRING_I18N:
		if v != "" && l.opts.I18n {
			return "_(" + quote(v) + ")"
		}
		return l.str(v)
	case metamodel.PT_BITLIST:
		return symbols(v, "wx", "|")
	case metamodel.PT_BOOL:
		if v == "0" || v == "" {
			return "false"
		}
		return "true"
	case metamodel.PT_WXPOINT:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("wxPoint( %d,%d )", p.X, p.Y)
		}
		return "wxDefaultPosition"
	case metamodel.PT_WXSIZE:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("wxSize( %d,%d )", p.X, p.Y)
		}
		return "wxDefaultSize"
	case metamodel.PT_WXFONT:
		if v == "" {
			return ""
		}
		f := objectbase.ParseFont(v)
		size := "wxNORMAL_FONT->GetPointSize()"
		if f.Size > 0 {
			size = fmt.Sprint(f.Size)
		}
		return fmt.Sprintf("wxFont( %s, %s, %s, %s, %t, %s )", size, f.Family, f.Style, f.Weight, f.Underlined, l.str(f.Face))
	case metamodel.PT_WXCOLOUR:
		c := objectbase.ParseColour(v)
		switch {
		case !c.Valid:
			return ""
		case c.IsSystem():
			return fmt.Sprintf("wxSystemSettings::GetColour( %s )", c.System)
		default:
			return fmt.Sprintf("wxColour( %d, %d, %d )", c.R, c.G, c.B)
		}
	case metamodel.PT_BITMAP:
		b := objectbase.ParseBitmap(v)
		switch {
		case b.Path == "":
			return "wxNullBitmap"
		case b.Source == objectbase.BITMAP_SOURCE_ART:
			id, client := artBitmap(b.Path)
			return fmt.Sprintf("wxArtProvider::GetBitmap( %s, %s )", id, client)
		default:
			return fmt.Sprintf("wxBitmap( %s, wxBITMAP_TYPE_ANY )", l.str(l.filePath(b.Path)))
		}
	case metamodel.PT_STRINGLIST:
		return utils.JoinFunc(objectbase.ParseStringList(v), ", ", func(s string) string { return l.ValueToCode(metamodel.PT_WXSTRING_I18N, s) })
	}
	return v
}

////////////////////////////////////////////////////////////////////////////////

type python struct {
	base
}

func (l *python) Extensions() []string {
	return []string{".py"}
}

func (l *python) Comment() string {
	return "#"
}

func (l *python) ClassIndent() bool {
	return true
}

func (l *python) BodyIndent() bool {
	return true
}

func (l *python) HandlerStub(handler, eventClass string) []string {
	return []string{
		fmt.Sprintf("def %s( self, event ):", handler),
		template.TAB + "event.Skip()",
	}
}

func (l *python) RootWxParent(*objectbase.Object) string {
	return "self"
}

func (l *python) str(v string) string {
	if v == "" {
		return "wx.EmptyString"
	}
	return "u" + quote(v)
}

func (l *python) ValueToCode(t metamodel.PropertyType, v string) string {
	switch t {
	case metamodel.PT_WXPARENT:
		return "self." + v
	case metamodel.PT_WXPARENT_SB:
		return "self." + v + ".GetStaticBox()"
	case metamodel.PT_WXPARENT_CP:
		return "self." + v + ".GetPane()"
	case metamodel.PT_WXSTRING:
		return l.str(v)
	case metamodel.PT_FILE, metamodel.PT_PATH:
		return l.str(l.filePath(v))
	case metamodel.PT_WXSTRING_I18N:
		if v != "" && l.opts.I18n {
			return "_(" + l.str(v) + ")"
		}
		return l.str(v)
	case metamodel.PT_MACRO, metamodel.PT_OPTION, metamodel.PT_EDIT_OPTION, metamodel.PT_CLASS:
		return symbol(v, "wx.")
	case metamodel.PT_BITLIST:
		return symbols(v, "wx.", "|")
	case metamodel.PT_BOOL:
		if v == "0" || v == "" {
			return "False"
		}
		return "True"
	case metamodel.PT_WXPOINT:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("wx.Point( %d,%d )", p.X, p.Y)
		}
		return "wx.DefaultPosition"
	case metamodel.PT_WXSIZE:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("wx.Size( %d,%d )", p.X, p.Y)
		}
		return "wx.DefaultSize"
	case metamodel.PT_WXFONT:
		if v == "" {
			return ""
		}
		f := objectbase.ParseFont(v)
		size := "wx.NORMAL_FONT.GetPointSize()"
		if f.Size > 0 {
			size = fmt.Sprint(f.Size)
		}
		underlined := "False"
		if f.Underlined {
			underlined = "True"
		}
		return fmt.Sprintf("wx.Font( %s, %s, %s, %s, %s, %s )", size, symbol(f.Family, "wx."), symbol(f.Style, "wx."), symbol(f.Weight, "wx."), underlined, l.str(f.Face))
	case metamodel.PT_WXCOLOUR:
		c := objectbase.ParseColour(v)
		switch {
		case !c.Valid:
			return ""
		case c.IsSystem():
			return fmt.Sprintf("wx.SystemSettings.GetColour( %s )", symbol(c.System, "wx."))
		default:
			return fmt.Sprintf("wx.Colour( %d, %d, %d )", c.R, c.G, c.B)
		}
	case metamodel.PT_BITMAP:
		b := objectbase.ParseBitmap(v)
		switch {
		case b.Path == "":
			return "wx.NullBitmap"
		case b.Source == objectbase.BITMAP_SOURCE_ART:
			id, client := artBitmap(b.Path)
			return fmt.Sprintf("wx.ArtProvider.GetBitmap( %s, %s )", symbol(id, "wx."), symbol(client, "wx."))
		default:
			return fmt.Sprintf("wx.Bitmap( %s, wx.BITMAP_TYPE_ANY )", l.str(l.filePath(b.Path)))
		}
	case metamodel.PT_STRINGLIST:
		return "[ " + utils.JoinFunc(objectbase.ParseStringList(v), ", ", func(s string) string { return l.ValueToCode(metamodel.PT_WXSTRING_I18N, s) }) + " ]"
	}
	return v
}

////////////////////////////////////////////////////////////////////////////////

type php struct {
	base
}

func (l *php) Extensions() []string {
	return []string{".php"}
}

func (l *php) Comment() string {
	return "//"
}

func (l *php) ClassIndent() bool {
	return true
}

func (l *php) BodyIndent() bool {
	return true
}

func (l *php) HandlerStub(handler, eventClass string) []string {
	return []string{
		fmt.Sprintf("function %s( $event ){", handler),
		template.TAB + "$event->Skip();",
		"}",
	}
}

func (l *php) RootWxParent(*objectbase.Object) string {
	return "$this"
}

func (l *php) str(v string) string {
	if v == "" {
		return "wxEmptyString"
	}
	return quote(v, '$')
}

func (l *php) ValueToCode(t metamodel.PropertyType, v string) string {
	switch t {
	case metamodel.PT_WXPARENT:
		return "$this->" + v
	case metamodel.PT_WXPARENT_SB:
		return "$this->" + v + "->GetStaticBox()"
	case metamodel.PT_WXPARENT_CP:
		return "$this->" + v + "->GetPane()"
	case metamodel.PT_WXSTRING:
		return l.str(v)
	case metamodel.PT_FILE, metamodel.PT_PATH:
		return l.str(l.filePath(v))
	case metamodel.PT_WXSTRING_I18N:
		if v != "" && l.opts.I18n {
			return "_(" + l.str(v) + ")"
		}
		return l.str(v)
	case metamodel.PT_BITLIST:
		return symbols(v, "wx", "|")
	case metamodel.PT_BOOL:
		if v == "0" || v == "" {
			return "false"
		}
		return "true"
	case metamodel.PT_WXPOINT:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("new wxPoint( %d,%d )", p.X, p.Y)
		}
		return "wxDefaultPosition"
	case metamodel.PT_WXSIZE:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("new wxSize( %d,%d )", p.X, p.Y)
		}
		return "wxDefaultSize"
	case metamodel.PT_WXFONT:
		if v == "" {
			return ""
		}
		f := objectbase.ParseFont(v)
		size := "wxNORMAL_FONT->GetPointSize()"
		if f.Size > 0 {
			size = fmt.Sprint(f.Size)
		}
		return fmt.Sprintf("new wxFont( %s, %s, %s, %s, %t, %s )", size, f.Family, f.Style, f.Weight, f.Underlined, l.str(f.Face))
	case metamodel.PT_WXCOLOUR:
		c := objectbase.ParseColour(v)
		switch {
		case !c.Valid:
			return ""
		case c.IsSystem():
			return fmt.Sprintf("wxSystemSettings::GetColour( %s )", c.System)
		default:
			return fmt.Sprintf("new wxColour( %d, %d, %d )", c.R, c.G, c.B)
		}
	case metamodel.PT_BITMAP:
		b := objectbase.ParseBitmap(v)
		switch {
		case b.Path == "":
			return "wxNullBitmap"
		case b.Source == objectbase.BITMAP_SOURCE_ART:
			id, client := artBitmap(b.Path)
			return fmt.Sprintf("wxArtProvider::GetBitmap( %s, %s )", id, client)
		default:
			return fmt.Sprintf("new wxBitmap( %s, wxBITMAP_TYPE_ANY )", l.str(l.filePath(b.Path)))
		}
	case metamodel.PT_STRINGLIST:
		return "array(" + utils.JoinFunc(objectbase.ParseStringList(v), ", ", func(s string) string { return l.ValueToCode(metamodel.PT_WXSTRING_I18N, s) }) + ")"
	}
	return v
}

////////////////////////////////////////////////////////////////////////////////

type lua struct {
	base
}

func (l *lua) Extensions() []string {
	return []string{".lua"}
}

func (l *lua) Comment() string {
	return "--"
}

func (l *lua) ClassIndent() bool {
	return false
}

func (l *lua) BodyIndent() bool {
	return false
}

func (l *lua) HandlerStub(handler, eventClass string) []string {
	return nil
}

// RootWxParent is the form entry of the UI table.
func (l *lua) RootWxParent(obj *objectbase.Object) string {
	name := ""
	if obj != nil {
		if f := obj.Form(); f != nil {
			name = f.Name()
		}
	}
	return l.opts.uiTable() + "." + name
}

func (l *lua) str(v string) string {
	return quote(v)
}

func (l *lua) ValueToCode(t metamodel.PropertyType, v string) string {
	switch t {
	case metamodel.PT_WXPARENT:
		return l.opts.uiTable() + "." + v
	case metamodel.PT_WXPARENT_SB:
		return l.opts.uiTable() + "." + v + ":GetStaticBox()"
	case metamodel.PT_WXPARENT_CP:
		return l.opts.uiTable() + "." + v + ":GetPane()"
	case metamodel.PT_WXSTRING:
		return l.str(v)
	case metamodel.PT_FILE, metamodel.PT_PATH:
		return l.str(l.filePath(v))
	case metamodel.PT_WXSTRING_I18N:
		if v != "" && l.opts.I18n {
			return "wx.wxGetTranslation(" + l.str(v) + ")"
		}
		return l.str(v)
	case metamodel.PT_MACRO, metamodel.PT_OPTION, metamodel.PT_EDIT_OPTION, metamodel.PT_CLASS:
		if strings.HasPrefix(v, "wx") {
			return "wx." + v
		}
		return v
	case metamodel.PT_BITLIST:
		tokens := utils.SplitTrim(v, "|")
		if len(tokens) == 0 {
			return "0"
		}
		return utils.JoinFunc(tokens, " + ", func(s string) string { return l.ValueToCode(metamodel.PT_MACRO, s) })
	case metamodel.PT_BOOL:
		if v == "0" || v == "" {
			return "false"
		}
		return "true"
	case metamodel.PT_WXPOINT:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("wx.wxPoint( %d,%d )", p.X, p.Y)
		}
		return "wx.wxDefaultPosition"
	case metamodel.PT_WXSIZE:
		if p := objectbase.ParsePoint(v); v != "" && !p.IsDefault() {
			return fmt.Sprintf("wx.wxSize( %d,%d )", p.X, p.Y)
		}
		return "wx.wxDefaultSize"
	case metamodel.PT_WXFONT:
		if v == "" {
			return ""
		}
		f := objectbase.ParseFont(v)
		size := "wx.wxNORMAL_FONT:GetPointSize()"
		if f.Size > 0 {
			size = fmt.Sprint(f.Size)
		}
		return fmt.Sprintf("wx.wxFont( %s, wx.%s, wx.%s, wx.%s, %t, %s )", size, f.Family, f.Style, f.Weight, f.Underlined, l.str(f.Face))
	case metamodel.PT_WXCOLOUR:
		c := objectbase.ParseColour(v)
		switch {
		case !c.Valid:
			return ""
		case c.IsSystem():
			return fmt.Sprintf("wx.wxSystemSettings.GetColour( wx.%s )", c.System)
		default:
			return fmt.Sprintf("wx.wxColour( %d, %d, %d )", c.R, c.G, c.B)
		}
	case metamodel.PT_BITMAP:
		b := objectbase.ParseBitmap(v)
		switch {
		case b.Path == "":
			return "wx.wxNullBitmap"
		case b.Source == objectbase.BITMAP_SOURCE_ART:
			id, client := artBitmap(b.Path)
			return fmt.Sprintf("wx.wxArtProvider.GetBitmap( wx.%s, wx.%s )", id, client)
		default:
			return fmt.Sprintf("wx.wxBitmap( %s, wx.wxBITMAP_TYPE_ANY )", l.str(l.filePath(b.Path)))
		}
	case metamodel.PT_STRINGLIST:
		return "{ " + utils.JoinFunc(objectbase.ParseStringList(v), ", ", func(s string) string { return l.ValueToCode(metamodel.PT_WXSTRING_I18N, s) }) + " }"
	}
	return v
}
