// Package resources contains the built-in descriptor files: object
// types, default classes, plugin packages and code templates.
package resources

import (
	"embed"
	"io/fs"
	"path"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	// component library referenced by the bundled plugins
	_ "github.com/mandelsoft/formbuilder/pkg/components/libcommon"
)

//go:embed xml plugins
var content embed.FS

// ROOT is the directory of the resource tree in FileSystem.
const ROOT = "/"

// FileSystem returns a read-only virtual filesystem with the
// resource tree.
func FileSystem() vfs.FileSystem {
	mem := memoryfs.New()
	if err := Extract(mem, ROOT); err != nil {
		panic(err)
	}
	return readonlyfs.New(mem)
}

// Extract copies the resource tree into a directory of
// a filesystem.
func Extract(target vfs.FileSystem, dir string) error {
	return fs.WalkDir(content, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		t := path.Join(dir, p)
		if d.IsDir() {
			return target.MkdirAll(t, 0o755)
		}
		data, err := content.ReadFile(p)
		if err != nil {
			return err
		}
		return vfs.WriteFile(target, t, data, 0o644)
	})
}
