package router

import (
	"io"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/oclettings/oc-lettings-site/config"
	"github.com/oclettings/oc-lettings-site/internal/app/controller"
	"github.com/oclettings/oc-lettings-site/internal/middleware"
	"github.com/oclettings/oc-lettings-site/internal/web"
)

type Router struct {
	homeController    *controller.HomeController
	lettingController *controller.LettingController
	profileController *controller.ProfileController
	adminController   *controller.AdminController
	config            *config.Config
}

func NewRouter(
	homeController *controller.HomeController,
	lettingController *controller.LettingController,
	profileController *controller.ProfileController,
	adminController *controller.AdminController,
	cfg *config.Config,
) *Router {
	return &Router{
		homeController:    homeController,
		lettingController: lettingController,
		profileController: profileController,
		adminController:   adminController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	// Logging runs outermost so panicking requests are still logged.
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, r.homeController.Recover))
	if r.config.Sentry.Enabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Orange County Lettings is running",
		})
	})

	router.GET("/", r.homeController.Index)
	router.GET("/sentry-debug/", r.homeController.SentryDebug)

	lettings := router.Group("/lettings")
	{
		lettings.GET("/", r.lettingController.Index)
		lettings.GET("/:id/", r.lettingController.Show)
	}

	profiles := router.Group("/profiles")
	{
		profiles.GET("/", r.profileController.Index)
		profiles.GET("/:username/", r.profileController.Show)
	}

	router.GET("/admin/", r.adminController.Index)

	router.NoRoute(r.homeController.NotFound)

	return router
}
