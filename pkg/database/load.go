package database

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/formbuilder/pkg/components"
	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

const (
	TAG_PACKAGE    = "package"
	TAG_OBJECTINFO = "objectinfo"
	TAG_CATEGORY   = "category"
	TAG_PROPERTY   = "property"
	TAG_EVENT      = "event"
	TAG_OPTION     = "option"
	TAG_CHILD      = "child"
	TAG_INHERITS   = "inherits"
	TAG_CODEGEN    = "codegen"
	TAG_TEMPLATES  = "templates"
	TAG_TEMPLATE   = "template"
)

// Files and directories of a resource tree.
const (
	DIR_XML         = "xml"
	DIR_PLUGINS     = "plugins"
	DIR_LIB         = "lib"
	FILE_OBJTYPES   = "objtypes.xml"
	FILE_DEFAULT    = "default.xml"
	CODEGEN_POSTFIX = "code"
)

// types owning the properties of the C++ base class
var cppTypes = []string{
	"notebook", "flatnotebook", "listbook", "simplebook", "choicebook", "auinotebook",
	"widget", "expanded_widget", "propgrid", "propgridman", "statusbar", "component",
	"container", "menubar", "menu", "menuitem", "submenu", "toolbar", "ribbonbar",
	"ribbonpage", "ribbonpanel", "ribbonbuttonbar", "ribbonbutton", "ribbondropdownbutton",
	"ribbonhybridbutton", "ribbontogglebutton", "ribbontoolbar", "ribbontool",
	"ribbondropdowntool", "ribbonhybridtool", "ribbontoggletool", "ribbongallery",
	"ribbongalleryitem", "dataviewctrl", "dataviewtreectrl", "dataviewlistctrl",
	"dataviewlistcolumn", "dataviewcolumn", "tool", "splitter", "sizer", "gbsizer",
	"wizardpagesimple",
}

// types not declared as class member by default
var noPermissionTypes = []string{"sizer", "gbsizer", "menuitem"}

func HasCppProperties(typ string) bool {
	return slices.Contains(cppTypes, typ)
}

// LoadObjectTypes reads the object type definitions. It must be
// called before any package is loaded.
func (d *ObjectDatabase) LoadObjectTypes(file string) error {
	root, err := xmltree.Load(d.fs, file, xmltree.Options{CondenseWhitespace: true})
	if err != nil {
		return err
	}
	return d.types.Load(root)
}

func (d *ObjectDatabase) loadDescriptor(file string) (*xmltree.Element, error) {
	root, err := xmltree.Load(d.fs, file, xmltree.Options{CondenseWhitespace: true})
	if err != nil {
		return nil, err
	}
	if root.Name != TAG_PACKAGE {
		return nil, fmt.Errorf("%s: root element %q is not a %s", file, root.Name, TAG_PACKAGE)
	}
	return root, nil
}

// LoadPackage reads the class descriptors of a plugin package. Base
// classes and components are bound later by SetupPackage.
func (d *ObjectDatabase) LoadPackage(file, iconPath string) (*metamodel.Package, error) {
	root, err := d.loadDescriptor(file)
	if err != nil {
		return nil, errors.Wrapf(err, "package %q", file)
	}
	name, ok := root.Attr("name")
	if !ok {
		return nil, errors.Errorf("package %q: missing package name", file)
	}
	pkg := metamodel.NewPackage(name, root.AttrDefault("desc", ""), iconFile(iconPath, root.AttrDefault("icon", "")), root.AttrDefault("lib", ""))

	for _, elem := range root.ChildrenNamed(TAG_OBJECTINFO) {
		class, _ := elem.Attr("class")
		if !d.supported(elem) {
			log.Debug("class {{class}} requires toolkit version {{version}}", "class", class, "version", elem.AttrDefault("wxversion", ""))
			continue
		}
		typName := elem.AttrDefault("type", "")
		typ := d.types.GetObjectType(typName)
		if typ == nil {
			return nil, errors.Errorf("package %q: unknown object type %q for class %q", file, typName, class)
		}
		info := metamodel.NewObjectInfo(class, typ, pkg, elem.BoolAttr("startgroup", false))
		info.SetIcons(iconFile(iconPath, elem.AttrDefault("icon", "")), iconFile(iconPath, elem.AttrDefault("smallIcon", "")))
		d.parseProperties(elem, info, info.Category())

		if err := d.addClass(info); err != nil {
			return nil, errors.Wrapf(err, "package %q", file)
		}
		if !typ.IsHidden() {
			pkg.Add(info)
		}
	}
	return pkg, nil
}

func iconFile(dir, icon string) string {
	if icon == "" || dir == "" {
		return icon
	}
	return path.Join(dir, icon)
}

// supported checks the wxversion attribute against the configured
// toolkit version.
func (d *ObjectDatabase) supported(elem *xmltree.Element) bool {
	v, ok := elem.Attr("wxversion")
	if !ok || strings.TrimSpace(v) == "" {
		return true
	}
	req, err := ParseToolkitVersion(v)
	if err != nil {
		log.Warn("ignoring invalid wxversion {{version}}: {{error}}", "version", v, "error", err)
		return true
	}
	return !req.GreaterThan(d.version)
}

func (d *ObjectDatabase) parseProperties(elem *xmltree.Element, info *metamodel.ObjectInfo, cat *metamodel.Category) {
	for _, c := range elem.Children {
		switch c.Name {
		case TAG_CATEGORY:
			sub := metamodel.NewCategory(c.AttrDefault("name", ""))
			d.parseProperties(c, info, sub)
			cat.AddCategory(sub)
		case TAG_PROPERTY:
			p := d.parseProperty(info, c)
			if p != nil && info.AddPropertyInfo(p) {
				cat.AddProperty(p.Name())
			}
		case TAG_EVENT:
			if !d.supported(c) {
				continue
			}
			e := metamodel.NewEventInfo(c.AttrDefault("name", ""), c.AttrDefault("class", ""), c.Value(), c.AttrDefault("help", ""))
			if info.AddEventInfo(e) {
				cat.AddEvent(e.Name())
			}
		}
	}
}

func (d *ObjectDatabase) parseProperty(info *metamodel.ObjectInfo, elem *xmltree.Element) *metamodel.PropertyInfo {
	name := elem.AttrDefault("name", "")
	if !d.supported(elem) {
		return nil
	}
	typ, err := metamodel.ParsePropertyType(elem.AttrDefault("type", ""))
	if err != nil {
		log.Error("property {{property}} of class {{class}} not supported: {{error}}", "property", name, "class", info.ClassName(), "error", err)
		return nil
	}

	var options []metamodel.Option
	for _, o := range elem.ChildrenNamed(TAG_OPTION) {
		if d.supported(o) {
			options = append(options, metamodel.Option{Name: o.AttrDefault("name", ""), Description: o.AttrDefault("help", "")})
		}
	}

	var children []metamodel.PropertyChild
	for _, c := range elem.ChildrenNamed(TAG_CHILD) {
		ct, err := metamodel.ParsePropertyType(c.AttrDefault("type", "text"))
		if err != nil {
			log.Error("child {{child}} of property {{property}} of class {{class}} not supported: {{error}}", "child", c.AttrDefault("name", ""), "property", name, "class", info.ClassName(), "error", err)
			continue
		}
		children = append(children, metamodel.PropertyChild{
			Name:         c.AttrDefault("name", ""),
			Type:         ct,
			DefaultValue: c.Value(),
			Description:  c.AttrDefault("help", ""),
		})
	}

	def := elem.Value()
	if typ == metamodel.PT_PARENT && def == "" && len(children) > 0 {
		defs := make([]string, len(children))
		for i, c := range children {
			defs[i] = c.DefaultValue
		}
		def = strings.Join(defs, "; ")
	}
	p := metamodel.NewPropertyInfo(name, typ, def, elem.AttrDefault("help", ""), options, children)
	return p.WithEditor(elem.AttrDefault("editor", ""), elem.BoolAttr("hidden", false))
}

// SetupPackage binds the base classes and the components of the
// classes of a package loaded before.
func (d *ObjectDatabase) SetupPackage(file, libPath string) error {
	root, err := d.loadDescriptor(file)
	if err != nil {
		return errors.Wrapf(err, "package %q", file)
	}

	var lib components.Library
	if name := root.AttrDefault("lib", ""); name != "" {
		lib, err = d.importComponentLibrary(path.Join(libPath, name), name)
		if err != nil {
			log.LogError(err, "classes of package {{file}} have no components", "file", file)
		}
	}

	cpp := d.classes[CLASS_CPP]
	for _, elem := range root.ChildrenNamed(TAG_OBJECTINFO) {
		class := elem.AttrDefault("class", "")
		info := d.classes[class]
		if info == nil {
			// gated by version
			continue
		}

		for _, inh := range elem.ChildrenNamed(TAG_INHERITS) {
			bname := inh.AttrDefault("class", "")
			base := d.classes[bname]
			if base == nil {
				log.Error("base class {{base}} of class {{class}} not found", "base", bname, "class", class)
				continue
			}
			if base.IsSubclassOf(class) {
				log.Error("class {{class}} cannot inherit from its subclass {{base}}", "base", bname, "class", class)
				continue
			}
			idx := info.AddBaseClass(base)
			for _, p := range inh.ChildrenNamed(TAG_PROPERTY) {
				err := info.AddBaseClassDefaultPropertyValue(idx, p.AttrDefault("name", ""), p.Value())
				if err != nil {
					return errors.Wrapf(err, "package %q", file)
				}
			}
		}

		if cpp != nil && HasCppProperties(info.ObjectTypeName()) {
			idx := info.AddBaseClass(cpp)
			if slices.Contains(noPermissionTypes, info.ObjectTypeName()) {
				info.AddBaseClassDefaultPropertyValue(idx, "permission", "none")
			}
		}

		if lib != nil {
			if c := lib.Component(class); c != nil {
				d.components[class] = c
			} else {
				log.Debug("no component for class {{class}} in library {{library}}", "class", class, "library", lib.Name())
			}
		}
	}
	return nil
}

// importComponentLibrary binds a component library once per path.
func (d *ObjectDatabase) importComponentLibrary(path, name string) (components.Library, error) {
	if lib := d.libraries[path]; lib != nil {
		return lib, nil
	}
	lib := components.GetLibrary(name)
	if lib == nil {
		return nil, fmt.Errorf("component library %q not found", name)
	}
	d.libraries[path] = lib
	log.Debug("imported component library {{library}}", "library", path)
	return lib, nil
}

// LoadCodeGen reads a code template file of a language.
func (d *ObjectDatabase) LoadCodeGen(file string) error {
	root, err := xmltree.Load(d.fs, file)
	if err != nil {
		return errors.Wrapf(err, "code templates %q", file)
	}
	if root.Name != TAG_CODEGEN {
		return errors.Errorf("code templates %q: root element %q is not a %s", file, root.Name, TAG_CODEGEN)
	}
	lang, ok := root.Attr("language")
	if !ok || lang == "" {
		return errors.Errorf("code templates %q: missing language", file)
	}

	for _, elem := range root.ChildrenNamed(TAG_TEMPLATES) {
		ci := metamodel.NewCodeInfo()
		for _, t := range elem.ChildrenNamed(TAG_TEMPLATE) {
			ci.AddTemplate(t.AttrDefault("name", ""), t.Text)
		}

		if class, ok := elem.Attr("class"); ok {
			info := d.classes[class]
			if info == nil {
				log.Debug("templates for unknown class {{class}} ignored", "class", class)
				continue
			}
			info.AddCodeInfo(lang, ci)
			continue
		}

		if pt, ok := elem.Attr("property"); ok {
			typ, err := metamodel.ParsePropertyType(pt)
			if err != nil {
				log.Error("templates for property type {{type}} in {{file}} ignored: {{error}}", "type", pt, "file", file, "error", err)
				continue
			}
			m := d.propertyTemplates[typ]
			if m == nil {
				m = map[string]*metamodel.CodeInfo{}
				d.propertyTemplates[typ] = m
			}
			if old := m[lang]; old != nil {
				old.Merge(ci)
			} else {
				m[lang] = ci
			}
			for _, info := range d.order {
				if slices.Contains(info.PropertyTypes(), typ) {
					info.AddCodeInfo(lang, ci)
				}
			}
		}
	}
	return nil
}

// LoadPlugins performs the complete startup sequence on a resource
// tree: object types, default classes, all plugin packages and all
// code template files. Failing packages or template files are logged
// and skipped.
func (d *ObjectDatabase) LoadPlugins(dir string) error {
	err := d.LoadObjectTypes(path.Join(dir, DIR_XML, FILE_OBJTYPES))
	if err != nil {
		return err
	}

	xmlDir := path.Join(dir, DIR_XML)
	libDir := path.Join(dir, DIR_LIB)
	def := path.Join(xmlDir, FILE_DEFAULT)
	if _, err := d.LoadPackage(def, ""); err != nil {
		return err
	}
	if err := d.SetupPackage(def, libDir); err != nil {
		return err
	}

	pluginDir := path.Join(dir, DIR_PLUGINS)
	plugins, err := listDirs(d.fs, pluginDir)
	if err != nil {
		return err
	}

	var files, dirs []string
	for _, name := range plugins {
		pdir := path.Join(pluginDir, name)
		file := path.Join(pdir, name+".xml")
		if _, err := d.fs.Stat(file); err != nil {
			log.Debug("plugin {{plugin}} has no package descriptor", "plugin", name)
			continue
		}
		pkg, err := d.LoadPackage(file, path.Join(pdir, "icons"))
		if err != nil {
			log.LogError(err, "cannot load plugin {{plugin}}", "plugin", name)
			continue
		}
		d.packages = append(d.packages, pkg)
		files = append(files, file)
		dirs = append(dirs, pdir)
	}
	for _, file := range files {
		if err := d.SetupPackage(file, libDir); err != nil {
			log.LogError(err, "cannot setup package {{file}}", "file", file)
		}
	}

	for _, dir := range append([]string{xmlDir}, dirs...) {
		entries, err := vfs.ReadDir(d.fs, dir)
		if err != nil {
			return err
		}
		for _, f := range entries {
			if f.IsDir() || !isCodeGenFile(f.Name()) {
				continue
			}
			if err := d.LoadCodeGen(path.Join(dir, f.Name())); err != nil {
				log.LogError(err, "cannot load code templates {{file}}", "file", f.Name())
			}
		}
	}
	return nil
}

// isCodeGenFile matches template files like common.cppcode.
func isCodeGenFile(name string) bool {
	ext := path.Ext(name)
	return len(ext) > len(CODEGEN_POSTFIX)+1 && strings.HasSuffix(ext, CODEGEN_POSTFIX)
}

func listDirs(fs vfs.FileSystem, dir string) ([]string, error) {
	entries, err := vfs.ReadDir(fs, dir)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var r []string
	for _, e := range entries {
		if e.IsDir() {
			r = append(r, e.Name())
		}
	}
	slices.Sort(r)
	return r, nil
}
