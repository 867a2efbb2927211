package handlers

import (
	"io/fs"
	"net/http"

	"studentregistry/web"

	"github.com/gin-gonic/gin"
)

// registerClientRoutes serves the embedded single-page client.
// Served by hand rather than via StaticFS: gin's FileFromFS redirects
// "index.html" into a loop.
func (h *Handler) registerClientRoutes(r *gin.Engine) {
	r.GET("/", h.serveEmbedded("index.html", "text/html; charset=utf-8"))
	r.GET("/app.js", h.serveEmbedded("app.js", "application/javascript; charset=utf-8"))
}

func (h *Handler) serveEmbedded(name, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fs.ReadFile(web.Files, name)
		if err != nil {
			if h.log != nil {
				h.log.Errorw("static_read_failed", "file", name, "err", err)
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}
