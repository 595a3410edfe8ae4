package web

import (
	"embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

//go:embed static
var embedFS embed.FS

// RegisterPageHandlers wires the static quiz pages and the logo route.
// logoPath points at a PNG on disk; the route 404s when the file is absent.
func RegisterPageHandlers(r *gin.Engine, logoPath string) {
	pages := map[string]string{
		"/":          "static/index.html",
		"/admin":     "static/admin.html",
		"/eksorular": "static/eksorular.html",
	}

	for route, file := range pages {
		content, err := embedFS.ReadFile(file)
		if err != nil {
			panic("web: missing embedded page: " + file)
		}
		r.GET(route, func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", content)
		})
	}

	r.GET("/logo", func(c *gin.Context) {
		if logoPath == "" {
			c.Status(http.StatusNotFound)
			return
		}
		if _, err := os.Stat(logoPath); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(logoPath)
	})
}
