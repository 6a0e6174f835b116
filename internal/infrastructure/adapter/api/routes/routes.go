package routes

import (
	"github.com/gin-gonic/gin"

	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/infrastructure/adapter/api/handler"
	"luckyten/internal/infrastructure/adapter/api/middleware"
	"luckyten/internal/infrastructure/adapter/token"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	betHandler *handler.BetHandler,
	tokenIssuer *token.Issuer,
) {
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/players", accountHandler.CreatePlayer)
		api.POST("/login", accountHandler.Login)

		// Routes requiring a session token
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(tokenIssuer))
		{
			// POST /api/bets
			authenticated.POST("/bets", betHandler.PlaceWager)

			// GET /api/players/:playerId/balance
			authenticated.GET("/players/:playerId/balance", accountHandler.GetBalance)

			// GET /api/players/:playerId/bets
			authenticated.GET("/players/:playerId/bets", accountHandler.ListSettlements)

			// DELETE /api/players/:playerId
			authenticated.DELETE("/players/:playerId", accountHandler.DeletePlayer)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
