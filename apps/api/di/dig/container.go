package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/Santosh-B-Vitana/smsv2-sub002/apps/api/echo"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/docgen"
	logsvc "github.com/Santosh-B-Vitana/smsv2-sub002/services/logger"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

// newOptions loads the school profile; the server cannot run without it.
func newOptions(conf *core.Config, logger core.Logger) docgen.Options {
	opts, err := docgen.NewOptions(conf)
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
	return opts
}

// ServerDepsParam collects what the API server needs.
type ServerDepsParam struct {
	dig.In

	Conf       *core.Config
	Logger     core.Logger
	DocSvc     docgen.ServiceInterface
	Validate   *validator.Validate
	Translator ut.Translator
}

func newServerDeps(p ServerDepsParam) echoapi.ServerDeps {
	return echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		DocSvc:     p.DocSvc,
		Validate:   p.Validate,
		Translator: p.Translator,
	}
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newOptions))
	must(c.Provide(docgen.NewService, dig.As(new(docgen.ServiceInterface))))
	must(c.Provide(newServerDeps))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
