package main

import (
	"context"
	"html/template"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/account_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/db_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/feedback_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/livefeed_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/logger_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/memcache_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/cmd/fx/pages_fx"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/api/controllers"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/memcache"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/middleware"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		livefeed_fx.Module,
		account_fx.Module,
		feedback_fx.Module,
		pages_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	accountController *controllers.AccountController,
	feedbackController *controllers.FeedbackController,
	liveFeedController *controllers.LiveFeedController,
	pageController *controllers.PageController,
	revoked memcache.RevokedTokenStore) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	r.SetFuncMap(template.FuncMap{
		"formatDate": utils.FormatDisplay,
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	RegisterRoutes(r, accountController, feedbackController, liveFeedController, pageController, revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	feedbackController *controllers.FeedbackController,
	liveFeedController *controllers.LiveFeedController,
	pageController *controllers.PageController,
	revoked memcache.RevokedTokenStore) {

	optionalAuth := middleware.OptionalAuthMiddleware(revoked)
	requireAuth := middleware.JWTAuthMiddleware(revoked)

	pages := r.Group("/", optionalAuth)
	pages.GET("/", pageController.Landing)
	pages.GET("/feedback", pageController.Dashboard)
	pages.GET("/login", pageController.LoginPage)
	pages.GET("/signup", pageController.SignupPage)

	accounts := r.Group("/api/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", accountController.Logout)

	feedback := r.Group("/api/feedback")
	feedback.GET("", feedbackController.ListFeedback)
	feedback.GET("/live", optionalAuth, liveFeedController.HandleLiveFeed)
	feedback.POST("", requireAuth, feedbackController.CreateFeedback)
	feedback.DELETE("/:id", requireAuth, feedbackController.DeleteFeedback)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
