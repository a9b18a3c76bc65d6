package database

import (
	"github.com/Masterminds/semver/v3"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// DEFAULT_TOOLKIT_VERSION is the toolkit version generated code is
// targeted for if nothing else is configured.
const DEFAULT_TOOLKIT_VERSION = "3.2.0"

type Options struct {
	// FileSystem is used to read all descriptor files.
	FileSystem vfs.FileSystem
	// ToolkitVersion gates classes, properties and events declared
	// with a higher wxversion.
	ToolkitVersion string
}

func (o Options) fileSystem() vfs.FileSystem {
	if o.FileSystem == nil {
		return osfs.New()
	}
	return o.FileSystem
}

func (o Options) toolkitVersion() (*semver.Version, error) {
	v := o.ToolkitVersion
	if v == "" {
		v = DEFAULT_TOOLKIT_VERSION
	}
	return ParseToolkitVersion(v)
}
