package template

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/template", "code template interpreter")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
