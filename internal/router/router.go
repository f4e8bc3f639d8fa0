package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kubaGzk/eaty-backend/internal/authz"
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/ingredient"
	"github.com/kubaGzk/eaty-backend/internal/item"
	"github.com/kubaGzk/eaty-backend/internal/middleware"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

// Handlers bundles every catalog handler the router mounts.
type Handlers struct {
	Sizes        *size.Handler
	Ingredients  *ingredient.Handler
	Compositions *composition.Handler
	Categories   *category.Handler
	Items        *item.Handler
}

// New assembles the engine: CORS, health check, and the catalog routes,
// every one of them behind token auth and a policy gate.
func New(policy authz.Policy, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	can := func(action authz.Action, resource authz.Resource) gin.HandlerFunc {
		return middleware.RequirePermission(policy, action, resource)
	}

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		sizes := api.Group("/sizes")
		{
			sizes.POST("", can(authz.ActionCreate, authz.ResourceSize), h.Sizes.Create)
			sizes.GET("/:id", can(authz.ActionRead, authz.ResourceSize), h.Sizes.Get)
			sizes.GET("", can(authz.ActionRead, authz.ResourceSize), h.Sizes.List)
			sizes.PUT("/:id", can(authz.ActionUpdate, authz.ResourceSize), h.Sizes.Update)
			sizes.DELETE("/:id", can(authz.ActionDelete, authz.ResourceSize), h.Sizes.Delete)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.POST("", can(authz.ActionCreate, authz.ResourceIngredient), h.Ingredients.Create)
			ingredients.GET("/:id", can(authz.ActionRead, authz.ResourceIngredient), h.Ingredients.Get)
			ingredients.GET("", can(authz.ActionRead, authz.ResourceIngredient), h.Ingredients.List)
			ingredients.PUT("/:id", can(authz.ActionUpdate, authz.ResourceIngredient), h.Ingredients.Update)
			ingredients.DELETE("/:id", can(authz.ActionDelete, authz.ResourceIngredient), h.Ingredients.Delete)
		}

		compositions := api.Group("/compositions")
		{
			compositions.POST("", can(authz.ActionCreate, authz.ResourceComposition), h.Compositions.Create)
			compositions.GET("/:id", can(authz.ActionRead, authz.ResourceComposition), h.Compositions.Get)
			compositions.GET("", can(authz.ActionRead, authz.ResourceComposition), h.Compositions.List)
			compositions.PUT("/:id", can(authz.ActionUpdate, authz.ResourceComposition), h.Compositions.Update)
		}

		categories := api.Group("/categories")
		{
			categories.POST("", can(authz.ActionCreate, authz.ResourceCategory), h.Categories.Create)
			categories.GET("/:id", can(authz.ActionRead, authz.ResourceCategory), h.Categories.Get)
			categories.GET("", can(authz.ActionRead, authz.ResourceCategory), h.Categories.List)
			categories.PUT("/:id", can(authz.ActionUpdate, authz.ResourceCategory), h.Categories.Update)
		}

		items := api.Group("/items")
		{
			items.POST("", can(authz.ActionCreate, authz.ResourceItem), h.Items.Create)
			items.GET("/:id", can(authz.ActionRead, authz.ResourceItem), h.Items.Get)
			items.GET("", can(authz.ActionRead, authz.ResourceItem), h.Items.List)
			items.PUT("/:id", can(authz.ActionUpdate, authz.ResourceItem), h.Items.Update)
		}
	}

	return r
}
