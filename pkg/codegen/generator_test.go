package codegen_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/formbuilder/pkg/codegen"
	"github.com/mandelsoft/formbuilder/pkg/codegen/template"
	"github.com/mandelsoft/formbuilder/pkg/database"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

var _ = Describe("Generator", func() {
	var (
		db      *database.ObjectDatabase
		session *database.Session
		project *objectbase.Object
		frame   *objectbase.Object
		sizer   *objectbase.Object
	)

	add := func(class string, parent *objectbase.Object) *objectbase.Object {
		created := Must(db.CreateObject(session, class, parent))
		ExpectWithOffset(1, created).NotTo(BeNil())
		parent.AddChild(created)
		if created.ClassName() != class {
			return created.Child(0)
		}
		return created
	}

	generate := func(lang string) []codegen.File {
		l := Must(codegen.NewLanguage(lang, codegen.OptionsFromProject(project)))
		return Must(codegen.NewGenerator(l, project, nil).Generate())
	}

	BeforeEach(func() {
		db = Must(database.New(database.Options{FileSystem: ResourceFileSystem()}))
		MustBeSuccessful(db.LoadPlugins("/"))
		session = database.NewSession()
		project = db.NewObject(session, db.GetObjectInfo(database.CLASS_PROJECT))
		frame = add("Frame", project)
		sizer = add("wxBoxSizer", frame)
	})

	Context("C++", func() {
		It("generates header and source", func() {
			button := add("wxButton", sizer)
			button.Event("OnButtonClick").SetValue("OnClick")

			files := generate("cpp")
			Expect(files).To(HaveLen(2))
			Expect(files[0].Name).To(Equal("noname.h"))
			Expect(files[1].Name).To(Equal("noname.cpp"))

			header := string(files[0].Content)
			Expect(header).To(HavePrefix("// Code generated by fbgen. DO NOT EDIT.\n\n#pragma once\n"))
			Expect(header).To(ContainSubstring("#include <wx/button.h>\n#include <wx/frame.h>\n"))
			Expect(header).To(ContainSubstring("#include <wx/sizer.h>\n"))
			Expect(header).NotTo(ContainSubstring("wx/intl.h"))
			Expect(header).To(ContainSubstring("class MyFrame1 : public wxFrame\n{\n"))
			Expect(header).To(ContainSubstring(
				"\tprotected:\n" +
					"\t\twxButton* m_button1;\n" +
					"\n" +
					"\t\t// Virtual event handlers, override them in your derived class\n" +
					"\t\tvirtual void OnClick( wxCommandEvent& event ) { event.Skip(); }\n" +
					"\n" +
					"\tpublic:\n" +
					"\t\tMyFrame1( wxWindow* parent, wxWindowID id = wxID_ANY, const wxString& title = wxEmptyString, const wxPoint& pos = wxDefaultPosition, const wxSize& size = wxSize( 500,300 ), long style = wxDEFAULT_FRAME_STYLE|wxTAB_TRAVERSAL );\n" +
					"\t\t~MyFrame1();\n" +
					"\n" +
					"};\n"))
			Expect(header).NotTo(ContainSubstring("bSizer1;"))

			source := string(files[1].Content)
			Expect(source).To(ContainSubstring("#include \"noname.h\"\n"))
			Expect(source).To(ContainSubstring(
				"MyFrame1::MyFrame1( wxWindow* parent, wxWindowID id, const wxString& title, const wxPoint& pos, const wxSize& size, long style ) : wxFrame( parent, id, title, pos, size, style )\n" +
					"{\n" +
					"\tthis->SetSizeHints( wxDefaultSize, wxDefaultSize );\n" +
					"\twxBoxSizer* bSizer1 = new wxBoxSizer( wxVERTICAL );\n" +
					"\tm_button1 = new wxButton( this, wxID_ANY, wxT(\"MyButton\"), wxDefaultPosition, wxDefaultSize, 0|0 );\n" +
					"\tbSizer1->Add( m_button1, 0, wxALL, 5 );\n" +
					"\tthis->SetSizer( bSizer1 );\n" +
					"\tthis->Layout();\n" +
					"\tthis->Centre( wxBOTH );\n" +
					"\tm_button1->Bind( wxEVT_BUTTON, &MyFrame1::OnClick, this );\n" +
					"}\n" +
					"\n" +
					"MyFrame1::~MyFrame1()\n" +
					"{\n" +
					"}\n"))
		})

		It("renders settings", func() {
			button := add("wxButton", sizer)
			button.Property("fg").SetValue("255,0,0")
			button.Property("enabled").SetValue("0")
			button.Property("default").SetValue("1")

			source := string(generate("cpp")[1].Content)
			Expect(source).To(ContainSubstring(
				"\tm_button1->SetDefault();\n" +
					"\tm_button1->SetForegroundColour( wxColour( 255, 0, 0 ) );\n" +
					"\tm_button1->Enable( false );\n"))
		})

		It("declares arrays once", func() {
			add("wxButton", sizer).Property("name").SetValue("btn[0]")
			add("wxButton", sizer).Property("name").SetValue("btn[1]")

			files := generate("cpp")
			header := string(files[0].Content)
			Expect(header).To(ContainSubstring("\t\twxButton* btn[2];\n"))
			Expect(header).NotTo(ContainSubstring("btn[0]"))
			source := string(files[1].Content)
			Expect(source).To(ContainSubstring("\tbtn[0] = new wxButton("))
			Expect(source).To(ContainSubstring("\tbtn[1] = new wxButton("))
		})

		It("skips members without permission", func() {
			add("wxButton", sizer).Property("permission").SetValue("none")
			files := generate("cpp")
			Expect(string(files[0].Content)).NotTo(ContainSubstring("m_button1;"))
			Expect(string(files[1].Content)).To(ContainSubstring("\twxButton* m_button1 = new wxButton("))
		})

		It("generates splitters", func() {
			splitter := add("wxSplitterWindow", sizer)
			add("wxPanel", splitter)

			source := string(generate("cpp")[1].Content)
			Expect(source).To(ContainSubstring("\tm_panel1 = new wxPanel( m_splitter1, wxID_ANY, wxDefaultPosition, wxDefaultSize, wxTAB_TRAVERSAL );\n"))
			Expect(source).To(ContainSubstring("\tm_splitter1->Initialize( m_panel1 );\n\tbSizer1->Add( m_splitter1, 1, wxEXPAND, 5 );\n"))

			add("wxPanel", splitter)
			source = string(generate("cpp")[1].Content)
			Expect(source).To(ContainSubstring("\tm_splitter1->SplitVertically( m_panel1, m_panel2, 0 );\n"))
			Expect(source).NotTo(ContainSubstring("Initialize"))
		})

		It("uses the parent of nested windows", func() {
			item := Must(db.CreateObject(session, "wxPanel", sizer))
			sizer.AddChild(item)
			panel := item.Child(0)
			inner := add("wxBoxSizer", panel)
			add("wxButton", inner)

			source := string(generate("cpp")[1].Content)
			Expect(source).To(ContainSubstring("\tm_button1 = new wxButton( m_panel1, wxID_ANY,"))
			Expect(source).To(ContainSubstring("\tbSizer2->Add( m_button1, 0, wxALL, 5 );\n" +
				"\tm_panel1->SetSizer( bSizer2 );\n" +
				"\tm_panel1->Layout();\n" +
				"\tbSizer2->Fit( m_panel1 );\n" +
				"\tbSizer1->Add( m_panel1, 1, wxEXPAND|wxALL, 5 );\n"))
		})
	})

	Context("Python", func() {
		It("generates a single file", func() {
			button := add("wxButton", sizer)
			button.Event("OnButtonClick").SetValue("OnClick")

			files := generate("python")
			Expect(files).To(HaveLen(1))
			Expect(files[0].Name).To(Equal("noname.py"))
			source := string(files[0].Content)
			Expect(source).To(HavePrefix("# Code generated by fbgen. DO NOT EDIT.\n\nimport wx\nimport wx.xrc\n"))
			Expect(source).To(ContainSubstring(
				"class MyFrame1 ( wx.Frame ):\n" +
					"\tdef __init__( self, parent ):\n" +
					"\t\twx.Frame.__init__ ( self, parent, id = wx.ID_ANY, title = wx.EmptyString, pos = wx.DefaultPosition, size = wx.Size( 500,300 ), style = wx.DEFAULT_FRAME_STYLE|wx.TAB_TRAVERSAL )\n" +
					"\t\tself.SetSizeHints( wx.DefaultSize, wx.DefaultSize )\n" +
					"\t\tself.bSizer1 = wx.BoxSizer( wx.VERTICAL )\n" +
					"\t\tself.m_button1 = wx.Button( self, wx.ID_ANY, u\"MyButton\", wx.DefaultPosition, wx.DefaultSize, 0|0 )\n" +
					"\t\tself.bSizer1.Add( self.m_button1, 0, wx.ALL, 5 )\n" +
					"\t\tself.SetSizer( self.bSizer1 )\n" +
					"\t\tself.Layout()\n" +
					"\t\tself.Centre( wx.BOTH )\n" +
					"\t\tself.m_button1.Bind( wx.EVT_BUTTON, self.OnClick )\n" +
					"\n" +
					"\tdef __del__( self ):\n" +
					"\t\tpass\n" +
					"\n" +
					"\t# Virtual event handlers, override them in your derived class\n" +
					"\tdef OnClick( self, event ):\n" +
					"\t\tevent.Skip()\n"))
		})
	})

	Context("Lua", func() {
		It("uses the ui table", func() {
			add("wxButton", sizer)
			project.Property("ui_table").SetValue("T")

			source := string(generate("lua")[0].Content)
			Expect(source).To(ContainSubstring("T = {}\n"))
			Expect(source).To(ContainSubstring("T.MyFrame1 = wx.wxFrame( wx.NULL, wx.wxID_ANY, \"\", wx.wxDefaultPosition, wx.wxSize( 500,300 ), wx.wxDEFAULT_FRAME_STYLE + wx.wxTAB_TRAVERSAL )\n"))
			Expect(source).To(ContainSubstring("T.m_button1 = wx.wxButton( T.MyFrame1, wx.wxID_ANY, \"MyButton\","))
			Expect(source).To(ContainSubstring("T.bSizer1:Add( T.m_button1, 0, wx.wxALL, 5 )\nT.MyFrame1:SetSizer( T.bSizer1 )\n"))
		})
	})

	Context("files", func() {
		It("selects languages", func() {
			Expect(codegen.Enabled(project, codegen.LANG_CPP)).To(BeTrue())
			Expect(codegen.Enabled(project, codegen.LANG_PYTHON)).To(BeFalse())
			project.Property(codegen.PROP_CODE_GENERATION).SetValue("C++|Python")
			Expect(codegen.Enabled(project, codegen.LANG_PYTHON)).To(BeTrue())
		})

		It("writes the files of the selected languages", func() {
			fs := memoryfs.New()
			project.Property(codegen.PROP_FILE).SetValue("gui")
			written := Must(codegen.Generate(fs, "/out", project, template.NewCache()))
			Expect(written).To(Equal([]string{"/out/gui.h", "/out/gui.cpp"}))
			Expect(string(Must(vfs.ReadFile(fs, "/out/gui.cpp")))).To(ContainSubstring("#include \"gui.h\""))

			written = Must(codegen.Generate(fs, "/out", project, nil, "py", "php"))
			Expect(written).To(Equal([]string{"/out/gui.py", "/out/gui.php"}))
			Expect(string(Must(vfs.ReadFile(fs, "/out/gui.php")))).To(ContainSubstring("class MyFrame1 extends wxFrame {"))
		})

		It("rejects unknown languages", func() {
			_, err := codegen.Generate(memoryfs.New(), "/out", project, nil, "cobol")
			MustFailWithMessage(err, `unknown language "cobol"`)
		})
	})
})
