package xrc

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("formbuilder/xrc", "XRC import and export")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
