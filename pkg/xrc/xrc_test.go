package xrc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xrc"
)

var _ = Describe("XRC", func() {
	var (
		db      *database.ObjectDatabase
		session *database.Session
		project *objectbase.Object
		frame   *objectbase.Object
		button  *objectbase.Object
	)

	add := func(class string, parent *objectbase.Object) *objectbase.Object {
		created := Must(db.CreateObject(session, class, parent))
		ExpectWithOffset(1, created).NotTo(BeNil())
		parent.AddChild(created)
		return created.NonItemChild()
	}

	BeforeEach(func() {
		db = Must(database.New(database.Options{FileSystem: ResourceFileSystem()}))
		MustBeSuccessful(db.LoadPlugins("/"))
		session = database.NewSession()
		project = db.NewObject(session, db.GetObjectInfo(database.CLASS_PROJECT))
		frame = add("Frame", project)
		menubar := add("wxMenuBar", frame)
		menu := add("wxMenu", menubar)
		add("wxMenuItem", menu)
		add("submenu", menu)
		sizer := add("wxBoxSizer", frame)
		button = add("wxButton", sizer)
		button.Property("label").SetValue("OK")
		add("spacer", sizer)
		panel := add("wxPanel", sizer)
		add("wxStaticText", add("wxBoxSizer", panel))
	})

	Context("export", func() {
		It("exports forms", func() {
			data := string(Must(xrc.Write(db, project)))
			Expect(data).To(ContainSubstring(`<resource xmlns="http://www.wxwidgets.org/wxxrc" version="2.3.0.1">`))
			Expect(data).To(ContainSubstring(`<object class="wxFrame" name="MyFrame1">`))
			Expect(data).To(ContainSubstring(`<style>wxDEFAULT_FRAME_STYLE|wxTAB_TRAVERSAL</style>`))
			Expect(data).To(ContainSubstring(`<object class="wxMenu" name="m_menu1">`))
			Expect(data).To(ContainSubstring(`<object class="wxButton" name="m_button1">`))
			Expect(data).To(ContainSubstring(`<label>OK</label>`))
			Expect(data).To(ContainSubstring(`<object class="wxPanel" name="m_panel1">`))
		})

		It("exports sizer items", func() {
			e := xrc.ExportObject(db, button.Parent())
			Expect(e.AttrDefault("class", "")).To(Equal("sizeritem"))
			Expect(e.FirstChild("option").Value()).To(Equal("0"))
			Expect(e.FirstChild("flag").Value()).To(Equal("wxALL"))
			Expect(e.FirstChild("border").Value()).To(Equal("5"))
			Expect(e.FirstChild("object").AttrDefault("name", "")).To(Equal("m_button1"))
		})

		It("keeps widgets inside sizers", func() {
			e := xrc.ExportObject(db, button.Parent().Parent())
			Expect(e.AttrDefault("class", "")).To(Equal("wxBoxSizer"))
			items := e.ChildrenNamed("object")
			Expect(items).To(HaveLen(3))
			Expect(items[0].AttrDefault("class", "")).To(Equal("sizeritem"))
			Expect(items[0].FirstChild("object").AttrDefault("class", "")).To(Equal("wxButton"))
			Expect(items[2].FirstChild("object").AttrDefault("class", "")).To(Equal("wxPanel"))
		})

		It("merges spacer items", func() {
			spacer := button.Parent().Parent().Child(1)
			e := xrc.ExportObject(db, spacer)
			Expect(e.AttrDefault("class", "")).To(Equal("spacer"))
			Expect(e.FirstChild("option").Value()).To(Equal("1"))
			Expect(e.FirstChild("size").Value()).To(Equal("0,0"))
			Expect(e.FirstChild("object")).To(BeNil())
		})

		It("saves documents", func() {
			fs := memoryfs.New()
			MustBeSuccessful(xrc.Save(fs, "/out/gui.xrc", db, project))
			root := Must(xrc.Load(db, database.NewSession(), fs, "/out/gui.xrc"))
			Expect(root.ChildCount()).To(Equal(1))
		})
	})

	Context("import", func() {
		var imported *objectbase.Object

		BeforeEach(func() {
			data := Must(xrc.Write(db, project))
			imported = Must(xrc.Read(db, database.NewSession(), data))
			objectbase.CheckParentLinks(imported)
			objectbase.CheckItems(imported)
		})

		It("resolves designer classes by placement", func() {
			f := imported.Child(0)
			Expect(f.ClassName()).To(Equal("Frame"))
			Expect(f.Name()).To(Equal("MyFrame1"))
			Expect(f.Child(0).ClassName()).To(Equal("wxMenuBar"))
			Expect(f.Child(0).Child(0).ClassName()).To(Equal("wxMenu"))
			Expect(f.Child(0).Child(0).Child(1).ClassName()).To(Equal("submenu"))

			sizer := f.Child(1)
			Expect(sizer.ClassName()).To(Equal("wxBoxSizer"))
			Expect(sizer.Child(2).ClassName()).To(Equal("sizeritem"))
			Expect(sizer.Child(2).Child(0).ClassName()).To(Equal("wxPanel"))
		})

		It("keeps widgets inside sizers", func() {
			sizer := imported.Child(0).Child(1)
			Expect(sizer.ChildCount()).To(Equal(3))
			Expect(sizer.Child(0).Child(0).ClassName()).To(Equal("wxButton"))
			Expect(sizer.Child(0).Child(0).Name()).To(Equal("m_button1"))
		})

		It("restores item settings", func() {
			sizer := imported.Child(0).Child(1)
			item := sizer.Child(0)
			Expect(item.Child(0).PropertyValue("label")).To(Equal("OK"))
			Expect(item.PropertyValue("flag")).To(Equal("wxALL"))

			spacer := sizer.Child(1)
			Expect(spacer.Child(0).ClassName()).To(Equal("spacer"))
			Expect(spacer.PropertyValue("proportion")).To(Equal("1"))
			Expect(spacer.PropertyValue("flag")).To(Equal("wxEXPAND"))
		})

		It("reproduces the export", func() {
			Expect(string(Must(xrc.Write(db, imported)))).To(Equal(string(Must(xrc.Write(db, project)))))
		})
	})

	It("rejects foreign documents", func() {
		_, err := xrc.Read(db, session, []byte(`<wxFormBuilder_Project/>`))
		MustFailWithMessage(err, `unexpected root element "wxFormBuilder_Project"`)
	})
})
