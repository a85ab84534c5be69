package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/docgen"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	logsvc "github.com/Santosh-B-Vitana/smsv2-sub002/services/logger"
)

func main() {
	conf := core.NewConfig()

	// documents go to stdout, logs to stderr
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags), conf)
	logger.Enable(!conf.Debug)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	document.InitValidators(validate, translator)

	opts, err := docgen.NewOptions(conf)
	if err != nil {
		logger.Fatal(err.Error(), err)
	}

	// start CLI
	cli := commandLine{
		svc:      docgen.NewService(opts, logger),
		validate: validate,
		out:      os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
