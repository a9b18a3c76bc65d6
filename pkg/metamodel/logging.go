package metamodel

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/metamodel", "object types and class descriptors")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
