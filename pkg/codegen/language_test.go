package codegen_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/formbuilder/pkg/codegen"
	"github.com/mandelsoft/formbuilder/pkg/metamodel"
)

var _ = Describe("Languages", func() {
	It("resolves names", func() {
		for _, n := range []string{"C++", "cpp", "c++", "CPP"} {
			Expect(CanonicalName(n)).To(Equal(codegen.LANG_CPP))
		}
		Expect(CanonicalName("py")).To(Equal(codegen.LANG_PYTHON))
		Expect(CanonicalName("Lua")).To(Equal(codegen.LANG_LUA))
		_, err := codegen.NewLanguage("cobol", codegen.Options{})
		MustFailWithMessage(err, `unknown language "cobol"`)
	})

	Context("C++", func() {
		var lang codegen.Language

		BeforeEach(func() {
			lang = Must(codegen.NewLanguage("cpp", codegen.Options{RelativePath: true}))
		})

		It("describes the target", func() {
			Expect(lang.Extensions()).To(Equal([]string{".h", ".cpp"}))
			Expect(lang.Comment()).To(Equal("//"))
			Expect(lang.HandlerStub("OnClick", "wxCommandEvent")).To(Equal([]string{"virtual void OnClick( wxCommandEvent& event ) { event.Skip(); }"}))
			Expect(lang.RootWxParent(nil)).To(Equal("this"))
		})

		DescribeTable("values",
			func(t metamodel.PropertyType, v string, code string) {
				Expect(lang.ValueToCode(t, v)).To(Equal(code))
			},
			Entry("empty string", metamodel.PT_WXSTRING, "", "wxEmptyString"),
			Entry("string", metamodel.PT_WXSTRING, "say \"hi\"\n", `wxT("say \"hi\"\n")`),
			Entry("i18n string", metamodel.PT_WXSTRING_I18N, "x", `wxT("x")`),
			Entry("bitlist", metamodel.PT_BITLIST, "wxALL | wxEXPAND", "wxALL|wxEXPAND"),
			Entry("empty bitlist", metamodel.PT_BITLIST, "", "0"),
			Entry("true", metamodel.PT_BOOL, "1", "true"),
			Entry("false", metamodel.PT_BOOL, "0", "false"),
			Entry("point", metamodel.PT_WXPOINT, "10,20", "wxPoint( 10,20 )"),
			Entry("default point", metamodel.PT_WXPOINT, "-1,-1", "wxDefaultPosition"),
			Entry("size", metamodel.PT_WXSIZE, "500,300", "wxSize( 500,300 )"),
			Entry("default size", metamodel.PT_WXSIZE, "", "wxDefaultSize"),
			Entry("colour", metamodel.PT_WXCOLOUR, "255,0,0", "wxColour( 255, 0, 0 )"),
			Entry("system colour", metamodel.PT_WXCOLOUR, "wxSYS_COLOUR_WINDOW", "wxSystemSettings::GetColour( wxSYS_COLOUR_WINDOW )"),
			Entry("no bitmap", metamodel.PT_BITMAP, "", "wxNullBitmap"),
			Entry("string list", metamodel.PT_STRINGLIST, `"a" "b"`, `wxT("a"), wxT("b")`),
			Entry("parent", metamodel.PT_WXPARENT, "m_panel1", "m_panel1"),
			Entry("static box", metamodel.PT_WXPARENT_SB, "sbSizer1", "sbSizer1->GetStaticBox()"),
			Entry("pane", metamodel.PT_WXPARENT_CP, "m_pane1", "m_pane1->GetPane()"),
			Entry("macro", metamodel.PT_MACRO, "wxID_ANY", "wxID_ANY"),
		)

		It("wraps translatable strings", func() {
			lang = Must(codegen.NewLanguage("cpp", codegen.Options{I18n: true}))
			Expect(lang.ValueToCode(metamodel.PT_WXSTRING_I18N, "x")).To(Equal(`_("x")`))
			Expect(lang.ValueToCode(metamodel.PT_WXSTRING_I18N, "")).To(Equal("wxEmptyString"))
		})

		It("prefixes file paths", func() {
			lang = Must(codegen.NewLanguage("cpp", codegen.Options{BasePath: "/base"}))
			Expect(lang.ValueToCode(metamodel.PT_FILE, "img.png")).To(Equal(`wxT("/base/img.png")`))
		})
	})

	Context("Python", func() {
		var lang codegen.Language

		BeforeEach(func() {
			lang = Must(codegen.NewLanguage("python", codegen.Options{}))
		})

		It("describes the target", func() {
			Expect(lang.Extensions()).To(Equal([]string{".py"}))
			Expect(lang.Comment()).To(Equal("#"))
			Expect(lang.ClassIndent()).To(BeTrue())
			Expect(lang.RootWxParent(nil)).To(Equal("self"))
		})

		DescribeTable("values",
			func(t metamodel.PropertyType, v string, code string) {
				Expect(lang.ValueToCode(t, v)).To(Equal(code))
			},
			Entry("empty string", metamodel.PT_WXSTRING, "", "wx.EmptyString"),
			Entry("string", metamodel.PT_WXSTRING, "x", `u"x"`),
			Entry("bitlist", metamodel.PT_BITLIST, "wxALL|wxEXPAND", "wx.ALL|wx.EXPAND"),
			Entry("macro", metamodel.PT_MACRO, "wxID_ANY", "wx.ID_ANY"),
			Entry("class", metamodel.PT_CLASS, "wxButton", "wx.Button"),
			Entry("bool", metamodel.PT_BOOL, "1", "True"),
			Entry("size", metamodel.PT_WXSIZE, "5,6", "wx.Size( 5,6 )"),
			Entry("string list", metamodel.PT_STRINGLIST, `"a" "b"`, `[ u"a", u"b" ]`),
			Entry("parent", metamodel.PT_WXPARENT, "m_panel1", "self.m_panel1"),
		)
	})

	Context("PHP", func() {
		var lang codegen.Language

		BeforeEach(func() {
			lang = Must(codegen.NewLanguage("php", codegen.Options{}))
		})

		DescribeTable("values",
			func(t metamodel.PropertyType, v string, code string) {
				Expect(lang.ValueToCode(t, v)).To(Equal(code))
			},
			Entry("string", metamodel.PT_WXSTRING, "$x", `"\$x"`),
			Entry("size", metamodel.PT_WXSIZE, "5,6", "new wxSize( 5,6 )"),
			Entry("parent", metamodel.PT_WXPARENT, "m_panel1", "$this->m_panel1"),
		)

		It("renders handler stubs", func() {
			Expect(lang.HandlerStub("OnClick", "wxCommandEvent")).To(Equal([]string{
				"function OnClick( $event ){",
				"%TAB%$event->Skip();",
				"}",
			}))
		})
	})

	Context("Lua", func() {
		var lang codegen.Language

		BeforeEach(func() {
			lang = Must(codegen.NewLanguage("lua", codegen.Options{UITable: "T"}))
		})

		DescribeTable("values",
			func(t metamodel.PropertyType, v string, code string) {
				Expect(lang.ValueToCode(t, v)).To(Equal(code))
			},
			Entry("bitlist", metamodel.PT_BITLIST, "wxALL|wxEXPAND", "wx.wxALL + wx.wxEXPAND"),
			Entry("macro", metamodel.PT_MACRO, "wxID_ANY", "wx.wxID_ANY"),
			Entry("parent", metamodel.PT_WXPARENT, "m_panel1", "T.m_panel1"),
		)

		It("has no handler stubs", func() {
			Expect(lang.HandlerStub("OnClick", "wxCommandEvent")).To(BeNil())
			Expect(lang.RootWxParent(nil)).To(Equal("T."))
		})
	})
})

func CanonicalName(n string) string {
	c, ok := codegen.CanonicalLanguageName(n)
	ExpectWithOffset(1, ok).To(BeTrue())
	return c
}
