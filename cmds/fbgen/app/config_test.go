package app_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/formbuilder/pkg/testutils"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/formbuilder/cmds/fbgen/app"
)

var _ = Describe("config", func() {
	var fs vfs.FileSystem

	BeforeEach(func() {
		fs = memoryfs.New()
		MustBeSuccessful(fs.MkdirAll("/home", 0o755))
		MustBeSuccessful(vfs.WriteFile(fs, "/home/.fbgen", []byte(`
resources: ${BASE}/resources
languages:
- cpp
- python
logLevel: debug
`), 0o644))
	})

	It("reads config files", func() {
		cfg := app.ReadConfig(fs, "/home/.fbgen")
		Expect(cfg).NotTo(BeNil())
		Expect(*cfg.Resources).To(Equal("${BASE}/resources"))
		Expect(cfg.Languages).To(Equal([]string{"cpp", "python"}))
		Expect(cfg.ToolkitVersion).To(BeNil())
	})

	It("ignores missing files", func() {
		Expect(app.ReadConfig(fs, "/missing/.fbgen")).To(BeNil())
	})

	It("merges configs", func() {
		var cfg app.Config
		app.MergeConfig(&cfg, app.ReadConfig(fs, "/home/.fbgen"))
		version := "3.0.0"
		app.MergeConfig(&cfg, &app.Config{ToolkitVersion: &version, Languages: []string{"lua"}})
		app.MergeConfig(&cfg, nil)

		Expect(*cfg.Resources).To(Equal("${BASE}/resources"))
		Expect(*cfg.ToolkitVersion).To(Equal("3.0.0"))
		Expect(*cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Languages).To(Equal([]string{"lua"}))
	})

	It("expands variables", func() {
		cfg := app.ReadConfig(fs, "/home/.fbgen")
		MustBeSuccessful(cfg.Expand(func(name string) string {
			if name == "BASE" {
				return "/opt/fbgen"
			}
			return ""
		}))
		Expect(*cfg.Resources).To(Equal("/opt/fbgen/resources"))
	})
})
