package stubgame

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Tool is one entry in the build toolbar.
type Tool struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Toolbar tools in display order
var tools = []Tool{
	{ID: "road", Label: "Road"},
	{ID: "house", Label: "House"},
	{ID: "factory", Label: "Factory"},
	{ID: "airport", Label: "Airport"},
}

func isToolAvailable(id string) bool {
	for _, tool := range tools {
		if tool.ID == id {
			return true
		}
	}
	return false
}

func GamePageHandler(c *gin.Context) {
	data := gin.H{
		"Title":     "City Game",
		"Tools":     tools,
		"MapWidth":  MapWidth,
		"MapHeight": MapHeight,
	}

	c.HTML(http.StatusOK, "game.html", data)
}

func PlaceHandler(c *gin.Context) {
	x, err := strconv.Atoi(c.Param("x"))
	if err != nil || x < 0 || x > MapWidth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid x coordinate"})
		return
	}

	y, err := strconv.Atoi(c.Param("y"))
	if err != nil || y < 0 || y > MapHeight {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid y coordinate"})
		return
	}

	tool := c.Query("tool")
	if !isToolAvailable(tool) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tool"})
		return
	}

	placement := RecordPlacement(tool, x, y)
	c.JSON(http.StatusOK, placement)
}
