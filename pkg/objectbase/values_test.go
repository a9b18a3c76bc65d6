package objectbase_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/formbuilder/pkg/metamodel"
	"github.com/mandelsoft/formbuilder/pkg/objectbase"
)

var _ = Describe("property values", func() {
	property := func(typ metamodel.PropertyType, value string, children ...metamodel.PropertyChild) *objectbase.Property {
		return objectbase.NewProperty(metamodel.NewPropertyInfo("test", typ, value, "", nil, children), value)
	}

	Context("lists", func() {
		It("parses integer lists", func() {
			Expect(objectbase.ParseIntList("1, x,3,")).To(Equal([]int{1, 3}))
			Expect(objectbase.ParseIntList("")).To(BeEmpty())
			Expect(objectbase.FormatIntList([]int{1, 2, 3})).To(Equal("1,2,3"))
		})

		It("parses integer pair lists", func() {
			list := objectbase.ParseIntPairList("1:2, 3, x:4")
			Expect(list).To(Equal([]objectbase.IntPair{{1, 2}, {3, 0}}))
			Expect(objectbase.FormatIntPairList(list)).To(Equal("1:2,3:0"))
		})

		It("parses string lists", func() {
			list := objectbase.ParseStringList(`"a" "b ""quoted""" ""`)
			Expect(list).To(Equal([]string{"a", `b "quoted"`, ""}))
			Expect(objectbase.FormatStringList(list)).To(Equal(`"a" "b ""quoted""" ""`))
		})
	})

	Context("geometry", func() {
		It("parses points", func() {
			Expect(objectbase.ParsePoint("3,4")).To(Equal(objectbase.Point{3, 4}))
			Expect(objectbase.ParsePoint(" 3; 4 ")).To(Equal(objectbase.Point{3, 4}))
			Expect(objectbase.ParsePoint("").IsDefault()).To(BeTrue())
			Expect(objectbase.ParsePoint("a,4").IsDefault()).To(BeTrue())
			Expect(objectbase.Point{3, 4}.String()).To(Equal("3,4"))
		})

		It("handles null sizes", func() {
			Expect(property(metamodel.PT_WXSIZE, "-1,-1").IsNull()).To(BeTrue())
			Expect(property(metamodel.PT_WXSIZE, "").IsNull()).To(BeTrue())
			Expect(property(metamodel.PT_WXSIZE, "10,-1").IsNull()).To(BeFalse())
			Expect(property(metamodel.PT_WXSIZE, "10,-1").AsSize()).To(Equal(objectbase.Size{10, -1}))
		})
	})

	Context("colours and fonts", func() {
		It("parses colours", func() {
			Expect(objectbase.ParseColour("255, 0,10").String()).To(Equal("255,0,10"))
			c := objectbase.ParseColour("wxSYS_COLOUR_WINDOW")
			Expect(c.IsSystem()).To(BeTrue())
			Expect(c.String()).To(Equal("wxSYS_COLOUR_WINDOW"))
			Expect(objectbase.ParseColour("300,0,0").Valid).To(BeFalse())
			Expect(objectbase.ParseColour("1,2").Valid).To(BeFalse())
		})

		It("parses fonts", func() {
			f := objectbase.ParseFont("Arial,93,92,12,74,1")
			Expect(f).To(Equal(objectbase.Font{
				Face:       "Arial",
				Style:      "wxFONTSTYLE_ITALIC",
				Weight:     "wxFONTWEIGHT_BOLD",
				Size:       12,
				Family:     "wxFONTFAMILY_SWISS",
				Underlined: true,
			}))
			Expect(f.String()).To(Equal("Arial,wxFONTSTYLE_ITALIC,wxFONTWEIGHT_BOLD,12,wxFONTFAMILY_SWISS,1"))
			Expect(objectbase.ParseFont(",,,").String()).To(Equal(",wxFONTSTYLE_NORMAL,wxFONTWEIGHT_NORMAL,-1,wxFONTFAMILY_DEFAULT,0"))
		})
	})

	Context("bitmaps", func() {
		It("parses bitmaps", func() {
			Expect(objectbase.ParseBitmap("images/ok.png")).To(Equal(objectbase.Bitmap{objectbase.BITMAP_SOURCE_FILE, "images/ok.png"}))
			Expect(objectbase.ParseBitmap("Load From Art Provider; wxART_NEW")).To(Equal(objectbase.Bitmap{objectbase.BITMAP_SOURCE_ART, "wxART_NEW"}))
			Expect(objectbase.ParseBitmap("").String()).To(Equal(""))
			Expect(objectbase.Bitmap{objectbase.BITMAP_SOURCE_FILE, "a.png"}.String()).To(Equal("Load From File; a.png"))
		})

		It("detects null bitmaps", func() {
			Expect(property(metamodel.PT_BITMAP, "").IsNull()).To(BeTrue())
			Expect(property(metamodel.PT_BITMAP, "Load From File; ").IsNull()).To(BeTrue())
			Expect(property(metamodel.PT_BITMAP, "a.png").IsNull()).To(BeFalse())
		})
	})

	Context("typed access", func() {
		It("converts numbers", func() {
			p := property(metamodel.PT_INT, " 42 ")
			Expect(p.AsInt()).To(Equal(42))
			p.SetValue("x")
			Expect(p.AsInt()).To(Equal(0))
			p.SetInt(-3)
			Expect(p.Value()).To(Equal("-3"))
			p.SetValue("1.5")
			Expect(p.AsFloat()).To(Equal(1.5))
		})

		It("converts booleans", func() {
			p := property(metamodel.PT_BOOL, "0")
			Expect(p.AsBool()).To(BeFalse())
			p.SetBool(true)
			Expect(p.Value()).To(Equal("1"))
			Expect(p.AsBool()).To(BeTrue())
		})

		It("splits bit lists", func() {
			p := property(metamodel.PT_BITLIST, "wxALL | wxEXPAND|")
			Expect(p.AsBitlist()).To(Equal([]string{"wxALL", "wxEXPAND"}))
		})

		It("accesses parent property fields", func() {
			p := property(metamodel.PT_PARENT, "1; 2",
				metamodel.PropertyChild{Name: "x", Type: metamodel.PT_INT},
				metamodel.PropertyChild{Name: "y", Type: metamodel.PT_INT},
				metamodel.PropertyChild{Name: "z", Type: metamodel.PT_INT},
			)
			Expect(p.ChildFromParent("y")).To(Equal("2"))
			Expect(p.ChildFromParent("z")).To(Equal(""))
			Expect(p.ChildFromParent("w")).To(Equal(""))

			Expect(p.SetChildOfParent("z", "5")).To(BeTrue())
			Expect(p.Value()).To(Equal("1; 2; 5"))
			Expect(p.SetChildOfParent("w", "5")).To(BeFalse())
		})
	})
})
