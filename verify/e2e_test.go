//go:build e2e

package verify_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"citysim-verify/browser"
	"citysim-verify/stubgame"
	"citysim-verify/verify"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set HEADLESS=false environment variable to run with a visible browser
// for debugging.
func launcherForTest() *browser.Launcher {
	headless := os.Getenv("HEADLESS") != "false"
	return browser.NewLauncher(browser.Options{Headless: headless})
}

func setupGameServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)
	stubgame.ResetPlacements()

	server := httptest.NewServer(stubgame.Router())
	t.Cleanup(server.Close)
	return server
}

// staticServer serves one fixed HTML page on every path.
func staticServer(t *testing.T, html string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestVerificationAgainstRunningGame(t *testing.T) {
	server := setupGameServer(t)
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	scenario := verify.DefaultScenario()
	scenario.TargetURL = server.URL
	scenario.ScreenshotPath = screenshotPath

	t.Log("Running verification against the stub game...")
	err := verify.Execute(launcherForTest(), scenario)
	require.NoError(t, err)

	info, err := os.Stat(screenshotPath)
	require.NoError(t, err, "screenshot should exist after a successful run")
	assert.Greater(t, info.Size(), int64(0), "screenshot should not be empty")
	t.Logf("Captured %d bytes at %s", info.Size(), screenshotPath)

	// The placement POST from the page is asynchronous; give it a moment
	time.Sleep(1 * time.Second)

	placements := stubgame.Placements()
	require.Len(t, placements, 1)
	assert.Equal(t, "airport", placements[0].Tool)
	assert.Equal(t, 500, placements[0].X)
	assert.Equal(t, 300, placements[0].Y)
	t.Log("Airport placement reached the game API")
}

func TestVerificationOverwritesPreviousScreenshot(t *testing.T) {
	server := setupGameServer(t)
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	// Stale capture from an earlier run at the same path
	require.NoError(t, os.WriteFile(screenshotPath, []byte("old"), 0644))

	scenario := verify.DefaultScenario()
	scenario.TargetURL = server.URL
	scenario.ScreenshotPath = screenshotPath

	err := verify.Execute(launcherForTest(), scenario)
	require.NoError(t, err)

	info, err := os.Stat(screenshotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(3), "stale file should be replaced by a real capture")
}

func TestVerificationFailsWhenStartNeverAppears(t *testing.T) {
	server := staticServer(t, "<!DOCTYPE html><html><body><p>Down for maintenance</p></body></html>")
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	scenario := verify.DefaultScenario()
	scenario.TargetURL = server.URL
	scenario.ScreenshotPath = screenshotPath
	scenario.StartTimeout = 2 * time.Second

	err := verify.Execute(launcherForTest(), scenario)
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrPreconditionTimeout)

	_, statErr := os.Stat(screenshotPath)
	assert.True(t, os.IsNotExist(statErr), "no screenshot on a failed run")
}

func TestVerificationFailsWhenCanvasNeverAppears(t *testing.T) {
	server := staticServer(t, "<!DOCTYPE html><html><body><button>Start</button></body></html>")
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	scenario := verify.DefaultScenario()
	scenario.TargetURL = server.URL
	scenario.ScreenshotPath = screenshotPath
	scenario.CanvasTimeout = 2 * time.Second

	err := verify.Execute(launcherForTest(), scenario)
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrPreconditionTimeout)

	_, statErr := os.Stat(screenshotPath)
	assert.True(t, os.IsNotExist(statErr), "no screenshot on a failed run")
}

func TestVerificationFailsWhenGameUnreachable(t *testing.T) {
	// Grab a port nothing listens on anymore
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := dead.URL
	dead.Close()

	scenario := verify.DefaultScenario()
	scenario.TargetURL = target
	scenario.ScreenshotPath = filepath.Join(t.TempDir(), "verification.png")

	err := verify.Execute(launcherForTest(), scenario)
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrNavigationFailure)
}
