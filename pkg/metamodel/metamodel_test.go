package metamodel_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/xmltree"
)

var _ = Describe("meta model", func() {
	Context("object types", func() {
		It("loads type definitions", func() {
			root := Must(xmltree.Parse([]byte(`
<definitions>
  <objtype name="form">
    <childtype name="sizer" nmax="1" aui_nmax="0"/>
    <childtype name="widget"/>
    <childtype name="unknown"/>
  </objtype>
  <objtype name="sizeritem" item="1">
    <childtype name="widget" nmax="1"/>
  </objtype>
  <objtype name="sizer"/>
  <objtype name="widget" hidden="true"/>
</definitions>`)))
			r := metamodel.NewRegistry()
			MustBeSuccessful(r.Load(root))

			form := r.GetObjectType("form")
			sizer := r.GetObjectType("sizer")
			widget := r.GetObjectType("widget")
			Expect(r.TypeNames()).To(Equal([]string{"form", "sizer", "sizeritem", "widget"}))
			Expect(form.FindChildType(sizer, false)).To(Equal(1))
			Expect(form.FindChildType(sizer, true)).To(Equal(metamodel.FORBIDDEN))
			Expect(form.FindChildType(widget, false)).To(Equal(metamodel.UNLIMITED))
			Expect(form.FindChildType(widget, true)).To(Equal(metamodel.UNLIMITED))
			Expect(form.FindChildType(form, false)).To(Equal(metamodel.FORBIDDEN))
			Expect(form.ChildTypes()).To(Equal([]*metamodel.ObjectType{sizer, widget}))

			Expect(r.GetObjectType("sizeritem").IsItem()).To(BeTrue())
			Expect(form.IsItem()).To(BeFalse())
			Expect(widget.IsHidden()).To(BeTrue())
			Expect(form.Id()).To(Equal(0))
			Expect(widget.Id()).To(Equal(3))
		})

		It("rejects unnamed types", func() {
			root := Must(xmltree.Parse([]byte(`<definitions><objtype/></definitions>`)))
			MustFailWithMessage(metamodel.NewRegistry().Load(root), "object type without name")
		})

		It("skips invalid limits", func() {
			root := Must(xmltree.Parse([]byte(`
<definitions>
  <objtype name="a">
    <childtype name="b" nmax="x"/>
    <childtype name="a" nmax="-2"/>
  </objtype>
  <objtype name="b"/>
</definitions>`)))
			r := metamodel.NewRegistry()
			MustBeSuccessful(r.Load(root))
			Expect(r.GetObjectType("a").ChildTypes()).To(BeEmpty())
		})

		It("replaces repeated child type limits", func() {
			r := metamodel.NewRegistry()
			a := r.Define("a", false, false)
			b := r.Define("b", false, false)
			a.AddChildType(b, 1, 1)
			a.AddChildType(b, 2, metamodel.UNLIMITED)
			Expect(a.ChildTypes()).To(HaveLen(1))
			Expect(a.FindChildType(b, false)).To(Equal(2))
			Expect(a.FindChildType(b, true)).To(Equal(metamodel.UNLIMITED))
			Expect(r.Define("a", true, true)).To(BeIdenticalTo(a))
		})

		It("loads the bundled definitions", func() {
			r := Must(metamodel.LoadObjectTypes(ResourceFileSystem(), "/xml/objtypes.xml"))
			form := r.GetObjectType("form")
			Expect(form).NotTo(BeNil())
			Expect(form.FindChildType(r.GetObjectType("sizer"), false)).To(Equal(1))
			Expect(form.FindChildType(r.GetObjectType("sizer"), true)).To(Equal(0))
			Expect(form.FindChildType(r.GetObjectType("container"), true)).To(Equal(metamodel.UNLIMITED))
			Expect(r.GetObjectType("sizeritem").IsItem()).To(BeTrue())
			Expect(r.GetObjectType("project").IsHidden()).To(BeTrue())

			buf := &bytes.Buffer{}
			r.Dump(buf)
			Expect(buf.String()).To(ContainSubstring("- sizeritem item\n"))
		})
	})

	Context("property types", func() {
		It("maps descriptor names", func() {
			Expect(Must(metamodel.ParsePropertyType("wxString_i18n"))).To(Equal(metamodel.PT_WXSTRING_I18N))
			Expect(Must(metamodel.ParsePropertyType("uintpairlist"))).To(Equal(metamodel.PT_UINTPAIRLIST))
			Expect(metamodel.PT_BITMAP.String()).To(Equal("bitmap"))
			_, err := metamodel.ParsePropertyType("blob")
			MustFailWithMessage(err, `unknown property type "blob"`)
		})

		It("classifies types", func() {
			Expect(metamodel.PT_INTLIST.IsList()).To(BeTrue())
			Expect(metamodel.PT_STRINGLIST.IsList()).To(BeFalse())
			Expect(metamodel.PT_INTPAIRLIST.IsPairList()).To(BeTrue())
			Expect(metamodel.PT_BITLIST.HasOptions()).To(BeTrue())
			Expect(metamodel.PT_TEXT.HasOptions()).To(BeFalse())
		})
	})

	Context("classes", func() {
		var window, control, button *metamodel.ObjectInfo

		BeforeEach(func() {
			r := metamodel.NewRegistry()
			widget := r.Define("widget", false, false)
			pkg := metamodel.NewPackage("Common", "common widgets", "common.png", "libcommon")

			window = metamodel.NewObjectInfo("wxWindow", r.Define("interface", true, false), nil, false)
			window.AddPropertyInfo(metamodel.NewPropertyInfo("window_style", metamodel.PT_BITLIST, "", "", []metamodel.Option{{Name: "wxTAB_TRAVERSAL"}}, nil))
			control = metamodel.NewObjectInfo("wxControl", nil, nil, false)
			control.AddBaseClass(window)

			button = metamodel.NewObjectInfo("wxButton", widget, pkg, true)
			pkg.Add(button)
			Expect(button.AddPropertyInfo(metamodel.NewPropertyInfo("label", metamodel.PT_WXSTRING_I18N, "MyButton", "", nil, nil))).To(BeTrue())
			Expect(button.AddPropertyInfo(metamodel.NewPropertyInfo("label", metamodel.PT_TEXT, "other", "", nil, nil))).To(BeFalse())
			button.AddEventInfo(metamodel.NewEventInfo("OnButtonClick", "wxCommandEvent", "", ""))
			idx := button.AddBaseClass(control)
			MustBeSuccessful(button.AddBaseClassDefaultPropertyValue(idx, "window_style", "wxWANTS_CHARS"))
		})

		It("describes classes", func() {
			Expect(button.ObjectTypeName()).To(Equal("widget"))
			Expect(control.ObjectTypeName()).To(Equal(""))
			Expect(button.Package().Objects()).To(Equal([]*metamodel.ObjectInfo{button}))
			Expect(button.PropertyInfo("label").DefaultValue()).To(Equal("MyButton"))
			Expect(button.PropertyInfo("label").Type()).To(Equal(metamodel.PT_WXSTRING_I18N))
			Expect(button.EventInfo("OnButtonClick").EventClass()).To(Equal("wxCommandEvent"))
			Expect(window.PropertyInfo("window_style").HasOption("wxTAB_TRAVERSAL")).To(BeTrue())
		})

		It("handles base classes", func() {
			Expect(button.IsSubclassOf("wxButton")).To(BeTrue())
			Expect(button.IsSubclassOf("wxWindow")).To(BeTrue())
			Expect(window.IsSubclassOf("wxButton")).To(BeFalse())
			Expect(button.BaseClasses()).To(Equal([]*metamodel.ObjectInfo{control}))
			Expect(button.BaseClass(1)).To(BeNil())

			v, ok := button.BaseClassDefaultPropertyValue(0, "window_style")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("wxWANTS_CHARS"))
			_, ok = button.BaseClassDefaultPropertyValue(0, "label")
			Expect(ok).To(BeFalse())
			MustFailWithMessage(button.AddBaseClassDefaultPropertyValue(3, "x", "y"), `invalid base class index 3 for class "wxButton"`)
		})

		It("merges code templates", func() {
			ci := metamodel.NewCodeInfo()
			ci.AddTemplate("construction", "new $name")
			button.AddCodeInfo("C++", ci)

			other := metamodel.NewCodeInfo()
			other.AddTemplate("construction", "ignored")
			other.AddTemplate("include", "#include <wx/button.h>")
			button.AddCodeInfo("C++", other)

			code := button.CodeInfo("C++")
			Expect(code.Template("construction")).To(Equal("new $name"))
			Expect(code.Template("include")).To(Equal("#include <wx/button.h>"))
			Expect(code.Names()).To(Equal([]string{"construction", "include"}))
			Expect(button.Languages()).To(Equal([]string{"C++"}))
			Expect(button.CodeInfo("Lua").HasTemplate("construction")).To(BeFalse())

			ci.AddTemplate("declaration", "later")
			Expect(code.HasTemplate("declaration")).To(BeFalse())
		})
	})
})
