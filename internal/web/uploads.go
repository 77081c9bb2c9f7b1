package web

import (
	"github.com/gin-gonic/gin"
)

// uploadPolicy stops scripts embedded in uploaded SVGs from running on the site origin
const uploadPolicy = "default-src 'none'; script-src 'none'; style-src 'unsafe-inline'; img-src 'self' data:; sandbox"

// ServeUploads serves locally stored media under publicPath
func ServeUploads(r *gin.Engine, publicPath, dir string) {
	uploads := r.Group(publicPath, uploadHeaders)
	uploads.Static("/", dir)
}

func uploadHeaders(ctx *gin.Context) {
	ctx.Header("Content-Security-Policy", uploadPolicy)
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Next()
}
