package database

import (
	"fmt"
)

var ErrUnknownClass = fmt.Errorf("unknown class")

// UnknownClassError reports the creation of an object of a class
// not provided by any loaded package.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class %q (probably a missing or outdated plugin)", e.Class)
}

func (e *UnknownClassError) Is(err error) bool {
	return err == ErrUnknownClass
}
