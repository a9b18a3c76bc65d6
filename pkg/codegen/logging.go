package codegen

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/codegen", "code generation")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
