package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kartikmaddali/aura-commerce-demo/controllers"
	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

// Controllers bundles the handler groups registered by Register.
type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Users    *controllers.UserController
	AI       *controllers.AIController
}

// Register wires all route groups onto the engine. Literal product paths
// (search, categories) are registered before the :id wildcard so they win.
func Register(r *gin.Engine, tokens services.TokenService, ctrl Controllers) {
	auth := middleware.Authenticate(tokens)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/refresh", ctrl.Auth.Refresh)
		authGroup.POST("/logout", auth, ctrl.Auth.Logout)
		authGroup.GET("/profile", auth, middleware.RequireAuth(), ctrl.Auth.Profile)
	}

	products := api.Group("/products")
	{
		products.GET("", ctrl.Products.List)
		products.GET("/search", ctrl.Products.Search)
		products.GET("/categories", ctrl.Products.Categories)
		products.GET("/:id", ctrl.Products.Get)

		products.POST("", auth, middleware.RequireAuth(), middleware.RequireRole("admin"), ctrl.Products.Create)
		products.PUT("/:id", auth, middleware.RequireAuth(), middleware.RequireRole("admin"), ctrl.Products.Update)
		products.DELETE("/:id", auth, middleware.RequireAuth(), middleware.RequireRole("admin"), ctrl.Products.Delete)

		products.POST("/:id/wishlist", auth, middleware.RequireAuth(), ctrl.Products.AddToWishlist)
		products.DELETE("/:id/wishlist", auth, middleware.RequireAuth(), ctrl.Products.RemoveFromWishlist)
	}

	orders := api.Group("/orders", auth, middleware.RequireAuth())
	{
		orders.GET("", middleware.RequirePermission("orders", "read"), ctrl.Orders.List)
		orders.POST("", ctrl.Orders.Create)

		b2b := orders.Group("/b2b", middleware.RequireB2B())
		{
			b2b.GET("/organization", ctrl.Orders.ListOrganizationOrders)
			b2b.POST("/:id/approve", middleware.RequireRole("admin"), middleware.RequirePermission("orders", "write"), ctrl.Orders.Approve)
			b2b.POST("/:id/reject", middleware.RequireRole("admin"), middleware.RequirePermission("orders", "write"), ctrl.Orders.Reject)
		}

		orders.GET("/:id", middleware.RequirePermission("orders", "read"), ctrl.Orders.Get)
		orders.PUT("/:id", middleware.RequirePermission("orders", "write"), ctrl.Orders.Update)
	}

	users := api.Group("/users", auth, middleware.RequireAuth())
	{
		users.GET("/profile", ctrl.Users.Profile)
		users.PUT("/profile", ctrl.Users.UpdateProfile)

		b2b := users.Group("/b2b", middleware.RequireB2B(), middleware.RequireRole("admin"))
		{
			b2b.GET("/organization", ctrl.Users.ListOrganizationUsers)
			b2b.POST("", middleware.RequirePermission("users", "write"), ctrl.Users.CreateOrganizationUser)
		}
	}

	ai := api.Group("/ai", auth, middleware.RequireAuth())
	{
		ai.POST("/chat", ctrl.AI.Chat)
		ai.GET("/context", ctrl.AI.Context)
		ai.GET("/recommendations", ctrl.AI.Recommendations)
		ai.POST("/authenticate-agent", ctrl.AI.AuthenticateAgent)
		ai.POST("/tokens", ctrl.AI.IssueToken)
		ai.GET("/tokens/:type", ctrl.AI.GetToken)
		ai.POST("/async-authorization", ctrl.AI.AuthorizeAsyncTask)
		ai.POST("/documents", ctrl.AI.QueryDocuments)
	}
}
