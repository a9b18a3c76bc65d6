package template_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/formbuilder/pkg/codegen/template"
)

func expectNodes(text string, nodes ...template.Node) {
	t, err := template.Parse(text)
	ExpectWithOffset(1, err).To(Succeed())
	ExpectWithOffset(1, cmp.Diff(nodes, t.Nodes)).To(BeEmpty())
}

var _ = Describe("Template Parsing", func() {
	Context("text and properties", func() {
		It("plain text", func() {
			expectNodes("wxButton", &template.Text{Text: "wxButton"})
		})

		It("properties", func() {
			expectNodes("$name->SetLabel( $label );",
				&template.Property{Ref: template.PropertyRef{Name: "name"}},
				&template.Text{Text: "->SetLabel( "},
				&template.Property{Ref: template.PropertyRef{Name: "label"}},
				&template.Text{Text: " );"},
			)
		})

		It("braced property and child", func() {
			expectNodes("${name}_x $subclass/header",
				&template.Property{Ref: template.PropertyRef{Name: "name"}},
				&template.Text{Text: "_x "},
				&template.Property{Ref: template.PropertyRef{Name: "subclass", Child: "header"}},
			)
		})

		It("escapes", func() {
			expectNodes("a@$b@#c@@", &template.Text{Text: "a$b#c@"})
		})

		It("reduces whitespace runs", func() {
			expectNodes("$a \n\t $b",
				&template.Property{Ref: template.PropertyRef{Name: "a"}},
				&template.Property{Ref: template.PropertyRef{Name: "b"}},
			)
			expectNodes("$a @ @ $b",
				&template.Property{Ref: template.PropertyRef{Name: "a"}},
				&template.Text{Text: "  "},
				&template.Property{Ref: template.PropertyRef{Name: "b"}},
			)
		})
	})

	Context("macros", func() {
		It("navigation", func() {
			expectNodes("#wxparent $name",
				&template.Property{Ref: template.PropertyRef{Nav: template.NAV_WXPARENT, Name: "name"}},
			)
		})

		It("conditional", func() {
			expectNodes("#ifnotnull $font @{ $name->SetFont( $font ); @}",
				&template.Conditional{
					Condition: template.IF_NOT_NULL,
					Ref:       &template.PropertyRef{Name: "font"},
					Body: []template.Node{
						&template.Property{Ref: template.PropertyRef{Name: "name"}},
						&template.Text{Text: "->SetFont( "},
						&template.Property{Ref: template.PropertyRef{Name: "font"}},
						&template.Text{Text: " ); "},
					},
				},
			)
		})

		It("literal with quotes", func() {
			expectNodes(`#ifequal #parent $orient "wx""X" @{x@}`,
				&template.Conditional{
					Condition: template.IF_EQUAL,
					Ref:       &template.PropertyRef{Nav: template.NAV_PARENT, Name: "orient"},
					Literal:   `wx"X`,
					Body:      []template.Node{&template.Text{Text: "x"}},
				},
			)
		})

		It("nested blocks", func() {
			t := Must(template.Parse(`#iftypeequal "sizer" @{ #ifparenttypeequal "form" @{ a @} b @}`))
			Expect(t.String()).To(Equal(`{#iftypeequal "sizer" {#ifparenttypeequal "form" {"a "} " b "}}`))
		})

		It("foreach and simple macros", func() {
			t := Must(template.Parse("#foreach $cols @{ #pred:#npred; @}#nl#indent#append#utbl"))
			Expect(t.String()).To(Equal(`{#foreach $cols {#pred ":" #npred "; "} #nl #indent #append #utbl}`))
		})
	})

	Context("errors", func() {
		It("unknown macro", func() {
			_, err := template.Parse("a #bogus b")
			Expect(template.IsParseError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`unknown macro "bogus"`))
		})

		It("missing block", func() {
			_, err := template.Parse("#ifnull $a x")
			Expect(template.IsParseError(err)).To(BeTrue())
		})

		It("unterminated block", func() {
			_, err := template.Parse("#ifnull $a @{ x")
			Expect(template.IsParseError(err)).To(BeTrue())
		})

		It("unclosed property braces", func() {
			_, err := template.Parse("${label x")
			Expect(template.IsParseError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`"}" expected`))
		})

		It("missing property reference", func() {
			_, err := template.Parse("#ifnull label @{x@}")
			Expect(template.IsParseError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`"$" expected`))
		})

		It("missing property name", func() {
			_, err := template.Parse("$ x")
			Expect(template.IsParseError(err)).To(BeTrue())
		})
	})

	It("caches parsed templates", func() {
		c := template.NewCache()
		a := Must(c.Get("$a"))
		Expect(Must(c.Get("$a"))).To(BeIdenticalTo(a))
		_, err := c.Get("#x")
		Expect(err).To(HaveOccurred())
		Expect(c.Len()).To(Equal(1))
	})
})
