package main

import (
	"os"

	"citysim-verify/browser"
	"citysim-verify/common"
	"citysim-verify/verify"
)

func main() {
	log := common.GetLogger()

	scenario := verify.DefaultScenario()
	launcher := browser.NewLauncher(browser.Options{Headless: true})

	if err := verify.Execute(launcher, scenario); err != nil {
		log.Error().Err(err).Msg("Verification failed")
		os.Exit(1)
	}

	log.Info().Str("path", scenario.ScreenshotPath).Msg("Verification complete")
}
