package events

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/events", "designer notifications")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
