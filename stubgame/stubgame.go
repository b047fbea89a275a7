// Package stubgame serves a minimal stand-in for the city game so the
// verification flow can be exercised against a local test server. It
// renders the same UI shell the real game boots into: a start screen,
// a map canvas and a build toolbar, plus an API that records tool
// placements. It draws rectangles where the real game draws sprites.
package stubgame

import (
	"embed"
	"html/template"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

// Map canvas dimensions in CSS pixels.
const (
	MapWidth  = 800
	MapHeight = 600
)

//go:embed templates
var templatesFS embed.FS

func createRenderer() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// Templates are embedded so rendering does not depend on the working directory
	r.Add("game.html", template.Must(template.New("base.html").ParseFS(templatesFS,
		"templates/layouts/base.html", "templates/pages/game.html")))

	return r
}

// Router returns the engine serving the stand-in game.
func Router() *gin.Engine {
	r := gin.Default()

	r.HTMLRender = createRenderer()

	// Main page
	r.GET("/", GamePageHandler)

	// Game API endpoints
	r.POST("/api/place/:x/:y", PlaceHandler)

	return r
}
