package verify

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultTargetURL is where the game serves its UI locally.
	DefaultTargetURL = "http://localhost:3000"

	// DefaultScreenshotPath is where the evidence capture lands.
	DefaultScreenshotPath = "/home/jules/verification/verification.png"

	// DefaultStartTimeout bounds the wait for the start button to
	// appear on first paint.
	DefaultStartTimeout = 30 * time.Second

	// DefaultCanvasTimeout bounds the wait for the game canvas after
	// the game has been started.
	DefaultCanvasTimeout = 30 * time.Second

	// DefaultPlaceX and DefaultPlaceY position the airport placement
	// click relative to the canvas top-left corner, in CSS pixels.
	DefaultPlaceX = 500
	DefaultPlaceY = 300
)

// Scenario holds the parameters of one verification pass: where the game
// runs, how long each UI precondition may take, where the placement click
// lands and where the screenshot goes.
type Scenario struct {
	TargetURL      string        `validate:"required,url"`
	ScreenshotPath string        `validate:"required"`
	StartTimeout   time.Duration `validate:"gte=0"`
	CanvasTimeout  time.Duration `validate:"gte=0"`
	PlaceX         int           `validate:"gte=0"`
	PlaceY         int           `validate:"gte=0"`
}

// DefaultScenario returns the scenario the CLI runs: the locally served
// game, the standard timeouts and the fixed placement point.
func DefaultScenario() Scenario {
	return Scenario{
		TargetURL:      DefaultTargetURL,
		ScreenshotPath: DefaultScreenshotPath,
		StartTimeout:   DefaultStartTimeout,
		CanvasTimeout:  DefaultCanvasTimeout,
		PlaceX:         DefaultPlaceX,
		PlaceY:         DefaultPlaceY,
	}
}

// Validate validates the scenario using go-playground/validator.
func (s *Scenario) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
