package httpserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"sheshape-storefront/internal/checkout"
	"sheshape-storefront/internal/upstream"
)

type checkoutService interface {
	Begin(ctx context.Context, userID int64, email string) (*checkout.Session, error)
	Get(ctx context.Context, userID int64, id string) (*checkout.Session, error)
	SubmitShipping(ctx context.Context, userID int64, id string, in checkout.ShippingData) (*checkout.Session, error)
	SubmitPayment(ctx context.Context, userID int64, id string, in checkout.PaymentData) (*checkout.Session, error)
	ToggleSection(ctx context.Context, userID int64, id string, st checkout.Stage) (*checkout.Session, error)
	PlaceOrder(ctx context.Context, userID int64, id, notes string) (*checkout.Session, error)
}

// Deps carries everything the routes need.
type Deps struct {
	Checkout    checkoutService
	Upstream    *upstream.Client
	DB          *pgxpool.Pool
	JWTSecret   string
	CORSOrigins []string
	Logger      *slog.Logger
}

// buildRouter wires routes for the storefront API.
func buildRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(deps.Logger), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))

	api := router.Group("/api")

	p := passthrough{client: deps.Upstream}

	// Public storefront surface.
	api.GET("/products", p.listProducts)
	api.GET("/products/featured", p.featuredProducts)
	api.GET("/products/:id", p.getProduct)
	api.GET("/product-categories", p.productCategories)
	api.GET("/blog/posts", p.listBlogPosts)
	api.GET("/blog/posts/:id", p.getBlogPost)
	api.GET("/nutrition/plans", p.listNutritionPlans)
	api.GET("/nutrition/plans/:id", p.getNutritionPlan)
	api.GET("/gym/programs", p.listGymPrograms)
	api.GET("/gym/programs/:id", p.getGymProgram)
	api.GET("/gym/programs/:id/sessions", p.gymProgramSessions)
	api.GET("/trainers", p.listTrainers)
	api.GET("/nutritionists", p.listNutritionists)
	api.POST("/contact", p.sendContactMessage)

	// Routes that need the caller's token.
	authed := api.Group("", authRequired(deps.JWTSecret))
	{
		authed.GET("/auth/me", p.me)

		authed.GET("/cart", p.getCart)
		authed.GET("/cart/count", p.cartCount)
		authed.GET("/cart/validate", p.validateCart)

		h := checkoutHandler{svc: deps.Checkout}
		sessions := authed.Group("/checkout/sessions")
		sessions.POST("", h.begin)
		sessions.GET("/:id", h.get)
		sessions.POST("/:id/shipping", h.submitShipping)
		sessions.POST("/:id/payment", h.submitPayment)
		sessions.POST("/:id/sections/:section", h.toggleSection)
		sessions.POST("/:id/order", h.placeOrder)

		authed.GET("/orders/my-orders", p.myOrders)
		authed.GET("/orders/number/:number", p.orderByNumber)
		authed.GET("/orders/:id", p.getOrder)
		authed.PUT("/orders/:id/cancel", p.cancelOrder)

		authed.GET("/nutrition/my-plans", p.myNutritionPlans)
		authed.POST("/nutrition/plans/:id/purchase", p.purchaseNutritionPlan)
		authed.GET("/gym/my-programs", p.myGymPrograms)
		authed.POST("/gym/programs/:id/purchase", p.purchaseGymProgram)
	}

	// Management surface; the backend enforces authorization again.
	admin := api.Group("/admin", authRequired(deps.JWTSecret), adminRequired())
	{
		admin.GET("/products", p.allProducts)
		admin.POST("/products", p.createProduct)
		admin.PUT("/products/:id", p.updateProduct)
		admin.DELETE("/products/:id", p.deleteProduct)
		admin.PUT("/products/:id/activate", p.activateProduct)
		admin.PUT("/products/:id/deactivate", p.deactivateProduct)

		admin.GET("/orders", p.allOrders)
		admin.GET("/orders/status/:status", p.ordersByStatus)
		admin.PUT("/orders/:id/status", p.updateOrderStatus)
		admin.PUT("/orders/:id/payment-status", p.updatePaymentStatus)

		admin.GET("/users", p.listUsers)
		admin.GET("/users/:id", p.getUser)
		admin.PUT("/users/:id", p.updateUser)
		admin.DELETE("/users/:id", p.deleteUser)

		admin.GET("/blog/posts", p.allBlogPosts)
		admin.POST("/blog/posts", p.createBlogPost)
		admin.PUT("/blog/posts/:id", p.updateBlogPost)
		admin.DELETE("/blog/posts/:id", p.deleteBlogPost)
		admin.PUT("/blog/posts/:id/publish", p.publishBlogPost)
		admin.PUT("/blog/posts/:id/unpublish", p.unpublishBlogPost)

		admin.GET("/nutrition/plans", p.allNutritionPlans)
		admin.POST("/nutrition/plans", p.createNutritionPlan)
		admin.PUT("/nutrition/plans/:id", p.updateNutritionPlan)
		admin.DELETE("/nutrition/plans/:id", p.deleteNutritionPlan)
		admin.PUT("/nutrition/plans/:id/activate", p.activateNutritionPlan)
		admin.PUT("/nutrition/plans/:id/deactivate", p.deactivateNutritionPlan)
	}

	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
