// Package designer owns the project tree of an editing session. All
// modifications are executed as undoable commands and reported to
// the registered observers.
package designer

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/formbuilder/pkg/codegen"
	"github.com/mandelsoft/formbuilder/pkg/codegen/template"
	"github.com/mandelsoft/formbuilder/pkg/command"
	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/events"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/project"
	"github.com/mandelsoft/formbuilder/pkg/xrc"
)

// Designer is the single owner of a project tree.
type Designer struct {
	db        *database.ObjectDatabase
	fs        vfs.FileSystem
	session   *database.Session
	processor *command.Processor
	handlers  events.HandlerRegistry
	templates *template.Cache

	project   *objectbase.Object
	file      string
	converted bool
	selected  *objectbase.Object
	clipboard []byte
}

// New creates a designer with an empty project. Project files are
// read from and written to the given filesystem.
func New(db *database.ObjectDatabase, fs vfs.FileSystem) (*Designer, error) {
	d := &Designer{
		db:        db,
		fs:        fs,
		session:   database.NewSession(),
		processor: command.NewProcessor(),
		handlers:  events.NewHandlerRegistry(),
		templates: template.NewCache(),
	}
	if err := d.NewProject(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Designer) Database() *database.ObjectDatabase {
	return d.db
}

func (d *Designer) Session() *database.Session {
	return d.session
}

func (d *Designer) Project() *objectbase.Object {
	return d.project
}

// ProjectFile returns the file the project has been loaded from or
// saved to.
func (d *Designer) ProjectFile() string {
	return d.file
}

func (d *Designer) Events() events.HandlerRegistration {
	return d.handlers
}

func (d *Designer) notify(e *events.Event) {
	d.handlers.TriggerEvent(e)
}

////////////////////////////////////////////////////////////////////////////////
// project

func (d *Designer) setProject(p *objectbase.Object, file string, converted bool) {
	d.project = p
	d.file = file
	d.converted = converted
	d.selected = p
	d.processor.Reset()
	d.notify(&events.Event{Kind: events.PROJECT_LOADED, Object: p, File: file})
	d.notify(&events.Event{Kind: events.PROJECT_REFRESH, Object: p})
	d.notify(&events.Event{Kind: events.OBJECT_SELECTED, Object: p})
}

// NewProject replaces the project by an empty one.
func (d *Designer) NewProject() error {
	info := d.db.GetObjectInfo(database.CLASS_PROJECT)
	if info == nil {
		return fmt.Errorf("no project class found")
	}
	d.session.ResetObjectCounters()
	d.setProject(d.db.NewObject(d.session, info), "", false)
	return nil
}

// LoadProject replaces the project by the content of a project file.
// On failure the current project is kept.
func (d *Designer) LoadProject(file string) error {
	r, err := project.Load(d.db, d.session, d.fs, file)
	if err != nil {
		return err
	}
	d.setProject(r.Root, file, r.Converted)
	return nil
}

// SaveProject writes the project. An empty file name uses the file
// the project has been loaded from.
func (d *Designer) SaveProject(file string) error {
	if file == "" {
		file = d.file
	}
	if file == "" {
		return fmt.Errorf("no project file given")
	}
	if err := project.Save(d.fs, file, d.project); err != nil {
		return err
	}
	d.file = file
	d.converted = false
	d.processor.SetSavePoint()
	d.notify(&events.Event{Kind: events.PROJECT_SAVED, Object: d.project, File: file})
	return nil
}

// IsModified reports whether the project differs from the last saved
// or loaded state. Converted projects are modified until saved.
func (d *Designer) IsModified() bool {
	return d.converted || !d.processor.IsAtSavePoint()
}

////////////////////////////////////////////////////////////////////////////////
// selection

func (d *Designer) SelectedObject() *objectbase.Object {
	return d.selected
}

// SelectObject selects an object of the project. Item wrappers are
// resolved to the wrapped object.
func (d *Designer) SelectObject(obj *objectbase.Object) bool {
	obj = nonItem(obj)
	if obj == nil || obj.Root() != d.project {
		return false
	}
	if obj != d.selected {
		d.selected = obj
		d.notify(&events.Event{Kind: events.OBJECT_SELECTED, Object: obj})
	}
	return true
}

////////////////////////////////////////////////////////////////////////////////
// commands

func (d *Designer) execute(c command.Command) {
	d.processor.Execute(c)
}

func (d *Designer) CanUndo() bool {
	return d.processor.CanUndo()
}

func (d *Designer) CanRedo() bool {
	return d.processor.CanRedo()
}

func (d *Designer) Undo() bool {
	if !d.processor.Undo() {
		return false
	}
	d.afterHistoryChange()
	return true
}

func (d *Designer) Redo() bool {
	if !d.processor.Redo() {
		return false
	}
	d.afterHistoryChange()
	return true
}

// afterHistoryChange moves a selection detached from the tree to the
// project.
func (d *Designer) afterHistoryChange() {
	d.notify(&events.Event{Kind: events.PROJECT_REFRESH, Object: d.project})
	if d.selected == nil || d.selected.Root() != d.project {
		d.selected = d.project
		d.notify(&events.Event{Kind: events.OBJECT_SELECTED, Object: d.project})
	}
}

// insertionPosition returns the position below parent following the
// branch of the selected object, or -1 to append.
func insertionPosition(selected, parent *objectbase.Object) int {
	for o := selected; o != nil; o = o.Parent() {
		if o.Parent() == parent {
			return parent.ChildPosition(o) + 1
		}
	}
	return -1
}

// nonItemParent skips item wrappers upwards.
func nonItemParent(obj *objectbase.Object) *objectbase.Object {
	p := obj.Parent()
	for p != nil && p.IsItem() {
		p = p.Parent()
	}
	return p
}

// CreateObject creates an object of a class below parent, or the
// selected object if parent is nil. If the class cannot be placed there,
// the ancestors are tried and the object is inserted behind the branch
// of the selection. It returns nil if there is no legal placement.
func (d *Designer) CreateObject(class string, parent *objectbase.Object) (*objectbase.Object, error) {
	if parent == nil {
		parent = d.selected
	}
	if parent == nil {
		parent = d.project
	}
	selected := parent

	for parent != nil {
		created, err := d.db.CreateObject(d.session, class, parent)
		if err != nil {
			return nil, err
		}
		if created != nil {
			d.execute(command.NewInsertObject(parent, created, insertionPosition(selected, parent)))
			d.ResolveNameConflict(created)
			obj := nonItem(created)
			d.notify(&events.Event{Kind: events.OBJECT_CREATED, Object: obj})
			d.SelectObject(obj)
			return obj, nil
		}
		parent = nonItemParent(parent)
	}
	log.Info("no placement found for class {{class}}", "class", class)
	return nil, nil
}

// removable returns the object to detach for removing obj, which is
// its item wrapper if there is one.
func (d *Designer) removable(obj *objectbase.Object) (*objectbase.Object, error) {
	if obj == nil || obj == d.project || obj.Root() != d.project {
		return nil, fmt.Errorf("object cannot be removed")
	}
	for obj.Parent() != nil && obj.Parent().IsItem() {
		obj = obj.Parent()
	}
	return obj, nil
}

// RemoveObject removes an object together with its item wrapper.
func (d *Designer) RemoveObject(obj *objectbase.Object) error {
	target, err := d.removable(obj)
	if err != nil {
		return err
	}
	parent := target.Parent()
	d.execute(command.NewRemoveObject(target))
	d.notify(&events.Event{Kind: events.OBJECT_REMOVED, Object: nonItem(target)})
	if d.selected != nil && d.selected.Root() != d.project {
		d.selected = nil
		d.SelectObject(nonItemOrSelf(parent))
	}
	return nil
}

func nonItemOrSelf(obj *objectbase.Object) *objectbase.Object {
	for obj != nil && obj.IsItem() {
		obj = obj.Parent()
	}
	return obj
}

// CopyObject stores an object tree in the clipboard.
func (d *Designer) CopyObject(obj *objectbase.Object) error {
	obj = nonItem(obj)
	if obj == nil || obj == d.project {
		return fmt.Errorf("object cannot be copied")
	}
	data, err := project.ToClipboard(obj)
	if err != nil {
		return err
	}
	d.clipboard = data
	return nil
}

func (d *Designer) CutObject(obj *objectbase.Object) error {
	if _, err := d.removable(obj); err != nil {
		return err
	}
	if err := d.CopyObject(obj); err != nil {
		return err
	}
	return d.RemoveObject(obj)
}

// Clipboard returns the serialized clipboard content.
func (d *Designer) Clipboard() []byte {
	return d.clipboard
}

// SetClipboard sets clipboard data, for example received from another
// instance.
func (d *Designer) SetClipboard(data []byte) {
	d.clipboard = data
}

func (d *Designer) CanPaste() bool {
	return len(d.clipboard) > 0
}

// PasteObject inserts the clipboard content below parent, or the
// selected object if parent is nil. Like CreateObject it tries the
// ancestors if the content cannot be placed. Conflicting names are
// resolved. It returns nil if there is no legal placement.
func (d *Designer) PasteObject(parent *objectbase.Object) (*objectbase.Object, error) {
	if !d.CanPaste() {
		return nil, fmt.Errorf("clipboard is empty")
	}
	obj, err := project.FromClipboard(d.db, d.session, d.clipboard)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		parent = d.selected
	}
	if parent == nil {
		parent = d.project
	}
	selected := parent

	for parent != nil {
		created, err := d.db.CreateObject(d.session, obj.ClassName(), parent)
		if err != nil {
			return nil, err
		}
		if created != nil {
			insert := obj
			if created.ClassName() != obj.ClassName() {
				// keep the layout settings of the new item wrapper
				created.RemoveAllChildren()
				created.AddChild(obj)
				insert = created
			}
			d.ResolveSubtreeNameConflicts(obj, parent)
			d.execute(command.NewInsertObject(parent, insert, insertionPosition(selected, parent)))
			d.notify(&events.Event{Kind: events.OBJECT_CREATED, Object: obj})
			d.SelectObject(obj)
			return obj, nil
		}
		parent = nonItemParent(parent)
	}
	log.Info("no placement found for {{object}}", "object", obj.String())
	return nil, nil
}

// ReparentObject moves an object below a new parent. Item wrappers are
// moved, created or dropped as required by the new parent.
func (d *Designer) ReparentObject(obj, parent *objectbase.Object) (bool, error) {
	obj = nonItem(obj)
	target, err := d.removable(obj)
	if err != nil {
		return false, err
	}
	if parent == nil || parent.Root() != d.project {
		return false, fmt.Errorf("invalid parent")
	}
	if target == parent || target.IsAncestorOf(parent) {
		return false, nil
	}

	probe, err := d.db.CreateObject(database.NewSession(), obj.ClassName(), parent)
	if err != nil {
		return false, err
	}
	if probe == nil {
		return false, nil
	}

	var c command.Command
	switch {
	case probe.ClassName() == obj.ClassName():
		if target == obj {
			c = command.NewReparentObject(obj, parent)
		} else {
			c = command.NewGroup("reparent", command.NewRemoveObject(target), command.NewReparentObject(obj, parent))
		}
	case target != obj && target.ClassName() == probe.ClassName():
		c = command.NewReparentObject(target, parent)
	default:
		item, err := d.db.CreateObject(d.session, obj.ClassName(), parent)
		if err != nil {
			return false, err
		}
		item.RemoveAllChildren()
		g := command.NewGroup("reparent")
		if target != obj {
			g.Add(command.NewRemoveObject(target))
		}
		g.Add(command.NewReparentObject(obj, item), command.NewInsertObject(parent, item, -1))
		c = g
	}
	d.execute(c)
	d.notify(&events.Event{Kind: events.PROJECT_REFRESH, Object: d.project})
	d.SelectObject(obj)
	return true, nil
}

// ModifyProperty changes a property value. Unchanged values are
// ignored.
func (d *Designer) ModifyProperty(prop *objectbase.Property, value string) {
	if prop.Value() == value {
		return
	}
	d.execute(command.NewModifyProperty(prop, value))
	d.notify(&events.Event{Kind: events.PROPERTY_MODIFIED, Object: prop.Object(), Property: prop})
}

func (d *Designer) ModifyEventHandler(evt *objectbase.Event, value string) {
	if evt.Value() == value {
		return
	}
	d.execute(command.NewModifyEvent(evt, value))
	d.notify(&events.Event{Kind: events.EVENT_MODIFIED, Object: evt.Object(), Handler: evt})
}

// MovePosition shifts an object, or its item wrapper, by num positions
// among its siblings. It returns false if the move would leave the
// child list.
func (d *Designer) MovePosition(obj *objectbase.Object, down bool, num int) bool {
	target, err := d.removable(nonItem(obj))
	if err != nil || num <= 0 {
		return false
	}
	parent := target.Parent()
	pos := parent.ChildPosition(target)
	if down {
		pos += num
	} else {
		pos -= num
	}
	if pos < 0 || pos >= parent.ChildCount() {
		return false
	}
	d.execute(command.NewShiftChild(target, pos))
	d.notify(&events.Event{Kind: events.PROJECT_REFRESH, Object: d.project})
	d.SelectObject(obj)
	return true
}

func (d *Designer) ExpandObject(obj *objectbase.Object, expand bool) {
	if obj.IsExpanded() == expand {
		return
	}
	d.execute(command.NewExpandObject(obj, expand))
	d.notify(&events.Event{Kind: events.OBJECT_EXPANDED, Object: obj})
}

////////////////////////////////////////////////////////////////////////////////
// output

// GenerateCode renders the code of the project for a language without
// writing it.
func (d *Designer) GenerateCode(lang string) ([]codegen.File, error) {
	l, err := codegen.NewLanguage(lang, codegen.OptionsFromProject(d.project))
	if err != nil {
		return nil, err
	}
	files, err := codegen.NewGenerator(l, d.project, d.templates).Generate()
	if err != nil {
		return nil, err
	}
	d.notify(&events.Event{Kind: events.CODE_GENERATION, Object: d.project, Language: l.Name()})
	return files, nil
}

// WriteCode generates the code for the given languages, or the ones
// enabled for the project, into a directory.
func (d *Designer) WriteCode(dir string, langs ...string) ([]string, error) {
	written, err := codegen.Generate(d.fs, dir, d.project, d.templates, langs...)
	if err != nil {
		return written, err
	}
	d.notify(&events.Event{Kind: events.CODE_GENERATION, Object: d.project})
	return written, nil
}

func (d *Designer) ExportXRC() ([]byte, error) {
	return xrc.Write(d.db, d.project)
}
