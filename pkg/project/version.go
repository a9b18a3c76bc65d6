package project

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// Version of the project file format written by this module.
const (
	MAJOR_VERSION = 1
	MINOR_VERSION = 13
)

var ErrNewerVersion = errors.New("project file version is newer than supported")

// NewerVersionError reports a file written by a newer tool.
type NewerVersionError struct {
	Major int
	Minor int
}

func (e *NewerVersionError) Error() string {
	return fmt.Sprintf("this project file was created with a newer version (file format %d.%d, supported %d.%d)",
		e.Major, e.Minor, MAJOR_VERSION, MINOR_VERSION)
}

func (e *NewerVersionError) Is(err error) bool {
	return err == ErrNewerVersion
}

// FileVersion maps a major/minor format version to a comparable version.
func FileVersion(major, minor int) *semver.Version {
	if major < 0 {
		major = 0
	}
	if minor < 0 {
		minor = 0
	}
	return semver.New(uint64(major), uint64(minor), 0, "", "")
}

func CurrentVersion() *semver.Version {
	return FileVersion(MAJOR_VERSION, MINOR_VERSION)
}

// checkVersion validates a file version. It returns true if the file
// requires a conversion.
func checkVersion(major, minor int) (bool, error) {
	v := FileVersion(major, minor)
	cur := CurrentVersion()
	if v.GreaterThan(cur) {
		return false, &NewerVersionError{Major: major, Minor: minor}
	}
	return v.LessThan(cur), nil
}
