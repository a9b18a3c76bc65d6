package designer

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/designer", "designer application state")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
