package testutils

import (
	"github.com/mandelsoft/vfs/pkg/layerfs"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/formbuilder/resources"
)

// ResourceFileSystem provides the built-in descriptor files with
// a writable in-memory layer on top.
func ResourceFileSystem() vfs.FileSystem {
	return layerfs.New(memoryfs.New(), resources.FileSystem())
}
