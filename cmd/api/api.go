package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JesusTreelabx/routvi-console/docs"
	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"github.com/JesusTreelabx/routvi-console/internal/ratelimiter"
	"github.com/JesusTreelabx/routvi-console/internal/service"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	mongostore "github.com/JesusTreelabx/routvi-console/internal/store/mongo"
	"github.com/JesusTreelabx/routvi-console/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config              config
	logger              *zap.SugaredLogger
	rateLimiter         ratelimiter.Limiter
	store               store.Store
	storage             *mongostore.Storage
	broker              queue.Broker
	profileService      *service.ProfileService
	catalogService      *service.CatalogService
	promoService        *service.PromotionsService
	dailySpecialService *service.DailySpecialService
	socialService       *service.SocialService
	feedService         *service.FeedService
	importService       *service.ImportService
	publishService      *service.PublishService
	importWorker        *worker.MenuImportWorker
	publishWorker       *worker.SitePublishWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	store       storeConfig
	queue       queueConfig
	googleCreds string
}

type storeConfig struct {
	Driver   string // "file" or "mongo"
	FilePath string
	Mongo    mongoConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type queueConfig struct {
	Driver        string // "rabbitmq" or "memory"
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/home-feed", app.getHomeFeedHandler)
		r.Get("/businesses/{slug}", app.getBusinessDetailHandler)

		r.Route("/business", func(r chi.Router) {
			r.Get("/profile", app.getProfileHandler)
			r.Put("/profile", app.updateProfileHandler)

			r.Route("/menu", func(r chi.Router) {
				r.Get("/categories", app.listCategoriesHandler)
				r.Post("/categories", app.createCategoryHandler)
				r.Put("/categories/{category_id}", app.renameCategoryHandler)
				r.Delete("/categories/{category_id}", app.deleteCategoryHandler)

				r.Get("/categories/{category_id}/products", app.listProductsHandler)
				r.Post("/categories/{category_id}/products", app.createProductHandler)
				r.Put("/products/{product_id}", app.updateProductHandler)
				r.Delete("/products/{product_id}", app.deleteProductHandler)

				r.Post("/import", app.createImportTaskHandler)
				r.Get("/import/{task_id}", app.getImportTaskHandler)
			})

			r.Get("/promotions", app.listPromotionsHandler)
			r.Post("/promotions", app.createPromotionHandler)
			r.Put("/promotions/{promo_id}", app.updatePromotionHandler)
			r.Delete("/promotions/{promo_id}", app.deletePromotionHandler)

			r.Get("/daily-special", app.getDailySpecialsHandler)
			r.Post("/daily-special/set", app.setDailySpecialHandler)

			r.Get("/social-posts", app.listSocialPostsHandler)
			r.Post("/social-posts", app.createSocialPostHandler)

			r.Post("/publish", app.publishSiteHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Routvi Business Console"
	docs.SwaggerInfo.Description = "Self-service API for Routvi businesses"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start import worker: %w", err)
		}
	}
	if app.publishWorker != nil {
		if err := app.publishWorker.Start(); err != nil {
			return fmt.Errorf("failed to start publish worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.importWorker != nil {
			app.importWorker.Stop()
		}
		if app.publishWorker != nil {
			app.publishWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing broker", "error", err)
			} else {
				app.logger.Info("broker closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
