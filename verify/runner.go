// Package verify drives a fixed interaction scenario against a running
// city game in a real browser and captures a full-page screenshot as
// evidence for visual review. The sequence is strictly linear: the first
// failing step aborts the rest of the run, and nothing is retried.
package verify

import (
	"fmt"

	"citysim-verify/common"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
)

// Runner executes one verification pass.
type Runner struct {
	scenario Scenario
	log      arbor.ILogger
}

// NewRunner validates the scenario and builds a runner whose log lines
// all share a per-run correlation id.
func NewRunner(s Scenario) (*Runner, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	runID := "run-" + uuid.New().String()[:8]
	return &Runner{
		scenario: s,
		log:      common.GetLogger().WithCorrelationId(runID),
	}, nil
}

// Run executes the scenario against the given page: open the game, start
// it, wait for the canvas, select the airport tool, place it at the
// scenario coordinates and capture the screenshot. The page and its
// browser stay open; teardown belongs to the caller.
func (r *Runner) Run(page Page) error {
	s := r.scenario

	r.log.Info().Str("url", s.TargetURL).Msg("Opening game")
	if err := page.Goto(s.TargetURL); err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrNavigationFailure, s.TargetURL, err)
	}

	r.log.Info().Str("timeout", s.StartTimeout.String()).Msg("Waiting for start button")
	start := page.GetByRole("button", "Start")
	if err := start.WaitVisible(s.StartTimeout); err != nil {
		return fmt.Errorf("%w: start button not visible within %s: %v", ErrPreconditionTimeout, s.StartTimeout, err)
	}
	if err := start.Click(); err != nil {
		return fmt.Errorf("click start button: %w", err)
	}

	r.log.Info().Str("timeout", s.CanvasTimeout.String()).Msg("Waiting for game canvas")
	canvas := page.Locator("canvas").First()
	if err := canvas.WaitVisible(s.CanvasTimeout); err != nil {
		return fmt.Errorf("%w: game canvas not visible within %s: %v", ErrPreconditionTimeout, s.CanvasTimeout, err)
	}

	r.log.Info().Msg("Selecting airport tool")
	airport := page.GetByRole("button", "Airport")
	if err := airport.WaitVisible(0); err != nil {
		return fmt.Errorf("%w: airport button not visible: %v", ErrPreconditionTimeout, err)
	}
	if err := airport.Click(); err != nil {
		return fmt.Errorf("click airport button: %w", err)
	}

	r.log.Info().Int("x", s.PlaceX).Int("y", s.PlaceY).Msg("Placing airport on canvas")
	if err := canvas.ClickPosition(float64(s.PlaceX), float64(s.PlaceY)); err != nil {
		return fmt.Errorf("place airport at (%d, %d): %w", s.PlaceX, s.PlaceY, err)
	}

	r.log.Info().Str("path", s.ScreenshotPath).Msg("Capturing verification screenshot")
	if err := page.Screenshot(s.ScreenshotPath); err != nil {
		return fmt.Errorf("capture screenshot to %s: %w", s.ScreenshotPath, err)
	}

	return nil
}

// Execute runs the scenario inside a scoped browser session: launch, run,
// close. The close runs on every path, including page acquisition and
// scenario failures.
func Execute(launcher Launcher, s Scenario) error {
	runner, err := NewRunner(s)
	if err != nil {
		return err
	}

	runner.log.Info().Msg("Launching browser")
	browser, err := launcher.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		if cerr := browser.Close(); cerr != nil {
			runner.log.Warn().Err(cerr).Msg("Browser close failed")
		}
	}()

	page, err := browser.NewPage()
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}

	return runner.Run(page)
}
