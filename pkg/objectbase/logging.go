package objectbase

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/objects", "designer object tree")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
