package routes

import (
	"net/http"

	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/api/handler"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	expenseHandler *handler.ExpenseHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", userHandler.ListUsers)
		userRoutes.GET("/:id", userHandler.GetUser)
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.PUT("/:id", userHandler.UpdateUser)
		userRoutes.DELETE("/:id", userHandler.DeleteUser)

		// Expenses scoped to a single user
		userRoutes.GET("/:id/expenses", userHandler.ListUserExpenses)
		userRoutes.POST("/:id/expenses", userHandler.CreateUserExpense)
	}

	// Expense routes
	expenseRoutes := router.Group("/expenses")
	{
		expenseRoutes.GET("", expenseHandler.ListExpenses)
		expenseRoutes.GET("/:id", expenseHandler.GetExpense)
		expenseRoutes.POST("", expenseHandler.CreateExpense)
		expenseRoutes.PUT("/:id", expenseHandler.UpdateExpense)
		expenseRoutes.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Order matters: recovery first so the logger sees the final status
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
