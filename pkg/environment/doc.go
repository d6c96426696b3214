// Package environment names the deployment environment (development, staging,
// production) and carries it through context.Context and structured logs.
//
// Parse accepts the full names and the short aliases "dev", "stage" and
// "prod". Environment implements encoding.TextUnmarshaler so it can be used
// directly as a field of an env-tagged config struct:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// WithContext and FromContext store and read the value; LoggerExtractor
// turns it into an "env" attribute for loggers built by pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	ctx := environment.WithContext(ctx, environment.Production)
//	log.InfoContext(ctx, "started") // env=production
package environment
