package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpctx "github.com/dtroode/recipe-server/internal/api/http/context"
	"github.com/dtroode/recipe-server/internal/api/http/handler"
	"github.com/dtroode/recipe-server/internal/api/http/middleware"
	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// AuthService is the full auth surface used by the routes.
type AuthService interface {
	handler.AuthService
	middleware.Authenticator
}

// Services bundles the domain services exposed over HTTP.
type Services struct {
	Users       handler.UserService
	Auth        AuthService
	Tags        handler.AttributeService[model.Tag]
	Ingredients handler.AttributeService[model.Ingredient]
	Recipes     handler.RecipeService
	// ImagesEnabled registers the recipe image upload route.
	ImagesEnabled bool
}

// Router builds the HTTP routing tree.
type Router struct {
	services       Services
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// New creates a Router for services.
func New(services Services, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		contextManager: httpctx.NewManager(),
		logger:         logger,
	}
}

// Register returns a gin engine with every route and middleware attached.
// Protected routes authenticate before any handler runs.
func (r *Router) Register() *gin.Engine {
	handler.RegisterValidator()

	authenticate := middleware.NewAuthenticate(r.services.Auth, r.contextManager, r.logger)

	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.NoRoute(handler.NotFound)
	e.NoMethod(methodNotAllowed(authenticate))

	logging := middleware.NewLogging(r.logger)
	e.Use(
		middleware.Recovery(r.logger),
		middleware.RequestID,
		middleware.Metrics,
		logging.Handle,
	)

	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := e.Group("/", authenticate.Handle)

	r.registerUserRoutes(e, protected)
	r.registerAttributeRoutes(protected)
	r.registerRecipeRoutes(protected)

	return e
}

// publicPaths are served without a token under at least one method.
var publicPaths = map[string]bool{
	"/user/create": true,
	"/user/token":  true,
	"/metrics":     true,
}

// methodNotAllowed answers a wrong method on a protected path only after
// the caller has authenticated, so anonymous callers get 401 first.
func methodNotAllowed(authenticate *middleware.Authenticate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !publicPaths[c.Request.URL.Path] {
			authenticate.Handle(c)
			if c.IsAborted() {
				return
			}
		}
		handler.MethodNotAllowed(c)
	}
}

func (r *Router) registerUserRoutes(public *gin.Engine, protected *gin.RouterGroup) {
	h := handler.NewUser(r.services.Users, r.services.Auth, r.contextManager, r.logger)

	public.POST("/user/create", h.Create)
	public.POST("/user/token", h.Token)

	protected.DELETE("/user/token", h.RevokeToken)
	protected.GET("/user/me", h.Me)
	protected.PUT("/user/me", h.UpdateMe)
	protected.PATCH("/user/me", h.UpdateMe)
}

func (r *Router) registerAttributeRoutes(protected *gin.RouterGroup) {
	tags := handler.NewAttribute(r.services.Tags, r.contextManager, r.logger)
	protected.GET("/tags", tags.List)
	protected.POST("/tags", tags.Create)

	ingredients := handler.NewAttribute(r.services.Ingredients, r.contextManager, r.logger)
	protected.GET("/ingredients", ingredients.List)
	protected.POST("/ingredients", ingredients.Create)
}

func (r *Router) registerRecipeRoutes(protected *gin.RouterGroup) {
	h := handler.NewRecipe(r.services.Recipes, r.contextManager, r.logger)

	protected.GET("/recipes", h.List)
	protected.POST("/recipes", h.Create)
	protected.GET("/recipes/:id", h.Get)
	protected.PUT("/recipes/:id", h.Update)
	protected.PATCH("/recipes/:id", h.Update)
	protected.DELETE("/recipes/:id", h.Delete)

	if r.services.ImagesEnabled {
		protected.POST("/recipes/:id/upload-image", h.UploadImage)
	}
}
