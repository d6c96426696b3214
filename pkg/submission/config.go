package submission

import "time"

const (
	DefaultDisplayDuration = 2 * time.Second
	DefaultSubmitDelay     = 1500 * time.Millisecond
)

// Config holds the submission timings, loadable with pkg/config.
type Config struct {
	// SuccessDisplay is how long the success state is shown before the form returns to idle.
	SuccessDisplay time.Duration `env:"FORM_SUCCESS_DISPLAY" envDefault:"2s"`
	// SubmitDelay is the latency of SimulatedAction.
	SubmitDelay time.Duration `env:"FORM_SUBMIT_DELAY" envDefault:"1500ms"`
}
