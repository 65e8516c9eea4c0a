// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"options-lab/internal/cache"
	"options-lab/internal/database"
	"options-lab/internal/handler"
	"options-lab/internal/handler/auth"
	"options-lab/internal/handler/simulations"
	"options-lab/internal/handler/strategies"
	"options-lab/internal/handler/users"
	"options-lab/internal/middleware"
	"options-lab/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	// 註冊、登入與會話管理
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db))
	apiAuth.POST("/refresh", auth.RefreshHandler(db))
	apiAuth.POST("/validate-token", auth.ValidateTokenHandler())
	apiAuth.GET("/me", auth.MeHandler(db), middleware.RequireAuth)
	apiAuth.POST("/change-password", auth.ChangePasswordHandler(db), middleware.RequireAuth)
	apiAuth.POST("/logout", auth.LogoutHandler(), middleware.RequireAuth)

	// 策略目錄：讀取公開，寫入需登入
	apiStrategies := api.Group("/strategies")
	apiStrategies.GET("", strategies.ListStrategiesHandler(db, rdb))
	apiStrategies.POST("", strategies.CreateStrategyHandler(db, rdb, wp), middleware.RequireAuth)
	apiStrategies.POST("/legs", strategies.CreateStrategyLegHandler(db, rdb, wp), middleware.RequireAuth)
	apiStrategies.DELETE("/legs/:leg_id", strategies.DeleteStrategyLegHandler(db, rdb, wp), middleware.RequireAuth)
	apiStrategies.GET("/:id", strategies.GetStrategyHandler(db))
	apiStrategies.PATCH("/:id", strategies.UpdateStrategyHandler(db, rdb, wp), middleware.RequireAuth)
	apiStrategies.DELETE("/:id", strategies.DeleteStrategyHandler(db, rdb, wp), middleware.RequireAuth)
	apiStrategies.GET("/:id/legs", strategies.ListStrategyLegsHandler(db))

	// 模擬皆屬個人資料，一律需登入
	apiSimulations := api.Group("/simulations", middleware.RequireAuth)
	apiSimulations.POST("", simulations.CreateSimulationHandler(db))
	apiSimulations.GET("/user/:user_id", simulations.ListUserSimulationsHandler(db))
	apiSimulations.GET("/:id", simulations.GetSimulationHandler(db))
	apiSimulations.PATCH("/:id", simulations.UpdateSimulationHandler(db))
	apiSimulations.DELETE("/:id", simulations.DeleteSimulationHandler(db))
	apiSimulations.POST("/:id/legs", simulations.CreateSimulationLegHandler(db))
	apiSimulations.GET("/:id/legs", simulations.ListSimulationLegsHandler(db))

	// 使用者個人資料管理
	apiUsers := api.Group("/users", middleware.RequireAuth)
	apiUsers.GET("/:id/profile", users.GetProfileHandler(db))
	apiUsers.PATCH("/:id/profile", users.UpdateProfileHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))
	apiUsers.GET("/:id/statistics", users.GetUserStatisticsHandler(db))
	apiUsers.GET("/:id/exists", users.UserExistsHandler(db))
}
