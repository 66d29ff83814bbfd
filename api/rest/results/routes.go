package results

import "github.com/gin-gonic/gin"

// registers result view routes
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/results/view", ViewHandler())
}
