package app

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/fbgen", "code generator command")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
