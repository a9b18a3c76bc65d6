package project

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/project", "project files")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
