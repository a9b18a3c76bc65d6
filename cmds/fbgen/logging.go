package main

import (
	"os"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
	"github.com/mattn/go-isatty"
)

func init() {
	logcfg := logrusl.Human(isatty.IsTerminal(os.Stderr.Fd()))
	logging.DefaultContext().SetBaseLogger(logrusr.New(logcfg.NewLogrus()))
}
