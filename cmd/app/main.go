package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"condoapp/internal/config"
	"condoapp/internal/database"
	"condoapp/internal/middleware"
	"condoapp/internal/modules/auth"
	"condoapp/internal/modules/condominium"
	"condoapp/internal/modules/finance"
	"condoapp/internal/modules/home"
	"condoapp/internal/modules/notices"
	"condoapp/internal/modules/occurrences"
	"condoapp/internal/modules/reservations"
	"condoapp/internal/modules/rules"
	"condoapp/internal/modules/schedule"
	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/session"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.SessionDB)
	if err != nil {
		log.Fatalf("session db connect failed: %v", err)
	}
	store, err := session.NewStore(context.Background(), db)
	if err != nil {
		log.Fatal(err)
	}

	api := apiclient.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout}, store)
	now := func() time.Time { return time.Now().UTC() }

	reservationsService := reservations.NewService(api)
	views := schedule.NewRegistry(reservationsService, schedule.NewAPIClient(api), cfg.OfficialUserID, api.ImageURL, now)
	homeService := home.NewService(cfg.CameraFeeds)

	authHandler := auth.NewHandler(auth.NewService(api, store, views, homeService))
	condominiumHandler := condominium.NewHandler(condominium.NewService(api, store))
	homeHandler := home.NewHandler(homeService)
	reservationsHandler := reservations.NewHandler(reservationsService)
	scheduleHandler := schedule.NewHandler(views)
	noticesHandler := notices.NewHandler(notices.NewService(api, now))
	rulesHandler := rules.NewHandler(rules.NewService(api))
	occurrencesHandler := occurrences.NewHandler(occurrences.NewService(api))
	financeHandler := finance.NewHandler(finance.NewService(api, now))

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.CORS(cfg.AllowedOrigins), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		loggedIn := v1.Group("/")
		loggedIn.Use(middleware.RequireSession(store))
		{
			condominiumHandler.RegisterRoutes(loggedIn)

			linked := loggedIn.Group("/")
			linked.Use(middleware.RequireLinked())
			{
				homeHandler.RegisterRoutes(linked)
				reservationsHandler.RegisterRoutes(linked)
				scheduleHandler.RegisterRoutes(linked)
				noticesHandler.RegisterRoutes(linked)
				rulesHandler.RegisterRoutes(linked)
				occurrencesHandler.RegisterRoutes(linked)
				financeHandler.RegisterRoutes(linked)
			}
		}
	}

	log.Printf("app listening on %s (api=%s)", cfg.Addr, cfg.APIBaseURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
