package command

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/command", "undoable tree edits")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
