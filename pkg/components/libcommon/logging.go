package libcommon

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/libcommon", "common component library")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
