package database

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/database", "object database and factory")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
