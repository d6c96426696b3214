package main

import (
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

type appConfig struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`
	Lang     string                  `env:"FORM_LANG" envDefault:"en"`
	Form     string                  `env:"FORM_NAME" envDefault:"contact"`

	Submission submission.Config
}
