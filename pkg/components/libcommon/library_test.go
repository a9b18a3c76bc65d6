package libcommon_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/formbuilder/pkg/components"
	"github.com/mandelsoft/formbuilder/pkg/components/libcommon"
	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

func value(e *xmltree.Element, name string) string {
	c := e.FirstChild(name)
	if c == nil {
		return "<none>"
	}
	return c.Value()
}

func property(e *xmltree.Element, name string) string {
	c := e.ChildWithAttr(objectbase.TAG_PROPERTY, objectbase.ATTR_NAME, name)
	if c == nil {
		return "<none>"
	}
	return c.Value()
}

var _ = Describe("common components", func() {
	var (
		db      *database.ObjectDatabase
		session *database.Session
	)

	create := func(class string) *objectbase.Object {
		return db.NewObject(session, db.GetObjectInfo(class))
	}

	BeforeEach(func() {
		db = Must(database.New(database.Options{FileSystem: ResourceFileSystem()}))
		MustBeSuccessful(db.LoadPlugins("/"))
		session = database.NewSession()
	})

	It("is registered", func() {
		lib := components.GetLibrary(libcommon.NAME)
		Expect(lib).NotTo(BeNil())
		Expect(components.Libraries()).To(ContainElement(libcommon.NAME))
		Expect(lib.Classes()).To(ContainElements("Frame", "wxButton", "sizeritem", "splitteritem"))
		Expect(lib.Component("wxUnknown")).To(BeNil())
	})

	Context("export", func() {
		It("exports widgets", func() {
			button := create("wxButton")
			button.Property("label").SetValue("OK")
			button.Property("style").SetValue("wxBU_LEFT")
			button.Property("window_style").SetValue("wxWANTS_CHARS|wxBU_LEFT")
			button.Property("bitmap").SetValue("Load From File; img/ok.png")

			e := db.Component("wxButton").ExportToXrc(button)
			Expect(e.AttrDefault("class", "")).To(Equal("wxButton"))
			Expect(e.AttrDefault("name", "")).To(Equal("m_button1"))
			Expect(value(e, "label")).To(Equal("OK"))
			Expect(value(e, "style")).To(Equal("wxBU_LEFT|wxWANTS_CHARS"))
			Expect(value(e, "bitmap")).To(Equal("img/ok.png"))
			Expect(value(e, "pos")).To(Equal("<none>"))
			Expect(e.ChildrenNamed("style")).To(HaveLen(1))
		})

		It("exports the window style of classes without own style", func() {
			panel := create("wxPanel")
			e := db.Component("wxPanel").ExportToXrc(panel)
			Expect(value(e, "style")).To(Equal("wxTAB_TRAVERSAL"))
		})

		It("exports combined values", func() {
			spacer := create("spacer")
			spacer.Property("width").SetValue("20")
			spacer.Property("height").SetValue("10")
			e := db.Component("spacer").ExportToXrc(spacer)
			Expect(value(e, "size")).To(Equal("20,10"))

			splitter := create("wxSplitterWindow")
			splitter.Property("splitmode").SetValue("wxSPLIT_HORIZONTAL")
			e = db.Component("wxSplitterWindow").ExportToXrc(splitter)
			Expect(value(e, "orientation")).To(Equal("horizontal"))
		})

		It("exports sizer items", func() {
			item := create("sizeritem")
			item.Property("proportion").SetValue("1")
			e := db.Component("sizeritem").ExportToXrc(item)
			Expect(value(e, "option")).To(Equal("1"))
			Expect(value(e, "flag")).To(Equal("wxALL"))
			Expect(value(e, "border")).To(Equal("5"))
		})

		It("exports string lists as content", func() {
			choice := create("wxChoice")
			choice.Property("choices").SetValue(`"one" "two"`)
			e := db.Component("wxChoice").ExportToXrc(choice)
			items := e.FirstChild("content").ChildrenNamed("item")
			Expect(items).To(HaveLen(2))
			Expect(items[1].Value()).To(Equal("two"))
		})

		It("hides transparent items", func() {
			c := db.Component("splitteritem")
			Expect(c.(components.XrcNamed).XrcClass()).To(Equal(""))
			Expect(c.ExportToXrc(create("splitteritem"))).To(BeNil())
			Expect(db.Component("submenu").(components.XrcNamed).XrcClass()).To(Equal("wxMenu"))
		})
	})

	Context("import", func() {
		It("imports widgets", func() {
			x := Must(xmltree.Parse([]byte(`<object class="wxButton" name="ok"><label>OK</label><bitmap>img/ok.png</bitmap><style>wxBU_LEFT</style></object>`)))
			e := db.Component("wxButton").ImportFromXrc(x)
			Expect(e.AttrDefault(objectbase.ATTR_CLASS, "")).To(Equal("wxButton"))
			Expect(property(e, "name")).To(Equal("ok"))
			Expect(property(e, "label")).To(Equal("OK"))
			Expect(property(e, "bitmap")).To(Equal("Load From File; img/ok.png"))
			Expect(property(e, "style")).To(Equal("wxBU_LEFT"))
			Expect(property(e, "pos")).To(Equal("<none>"))
		})

		It("imports combined values", func() {
			x := Must(xmltree.Parse([]byte(`<object class="spacer"><size>20, 10</size></object>`)))
			e := db.Component("spacer").ImportFromXrc(x)
			Expect(property(e, "width")).To(Equal("20"))
			Expect(property(e, "height")).To(Equal("10"))

			x = Must(xmltree.Parse([]byte(`<object class="wxSplitterWindow"><orientation>horizontal</orientation></object>`)))
			e = db.Component("wxSplitterWindow").ImportFromXrc(x)
			Expect(property(e, "splitmode")).To(Equal("wxSPLIT_HORIZONTAL"))
		})

		It("imports content lists", func() {
			x := Must(xmltree.Parse([]byte(`<object class="wxChoice"><content><item>one</item><item>t"wo</item></content></object>`)))
			e := db.Component("wxChoice").ImportFromXrc(x)
			Expect(property(e, "choices")).To(Equal(`"one" "t""wo"`))
		})
	})
})
