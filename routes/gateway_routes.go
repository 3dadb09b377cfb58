package routes

import (
	"github.com/gin-gonic/gin"

	"mapmate/internal/config"
	"mapmate/internal/proxy"
)

// SetupGatewayRoutes wires the single-origin paths the browser client
// uses onto their upstream services.
func SetupGatewayRoutes(router *gin.Engine, gateway *proxy.Gateway, services *config.ServicesConfig) {
	router.Any("/api/auth/*rest", gateway.Forward(services.AuthURL))
	router.Any("/api/users/*rest", gateway.Forward(services.UsersURL))

	router.Any("/locations", gateway.Forward(services.LocationsURL))
	router.Any("/locations/*rest", gateway.Forward(services.LocationsURL))

	router.GET("/directions", gateway.Directions(services.DirectionsURL))

	router.GET("/socket.io/*rest", gateway.Socket(services.SocketURL))
}
