package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/IsuruKaushika/UNITUNES-sub000/config"
	"github.com/IsuruKaushika/UNITUNES-sub000/media"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/repository"
	"github.com/IsuruKaushika/UNITUNES-sub000/routes"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client, err := config.ConnectDB(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the database")
	}
	defer config.CloseDB(client)

	colls := config.NewCollections(client, cfg)
	rdb := config.NewRedis(cfg)

	var mediaStore media.Store
	var mediaHandler http.Handler
	if cfg.CloudinaryURL != "" {
		mediaStore, err = media.NewCloudinaryStore(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary setup failed")
		}
		log.Info().Msg("serving images via Cloudinary")
	} else {
		gridStore := media.NewGridFSStore(client, cfg.DBName)
		mediaStore = gridStore
		mediaHandler = gridStore
		log.Info().Msg("no Cloudinary URL configured, storing images in GridFS")
	}

	router := mux.NewRouter()
	routes.Routes(router, &routes.Deps{
		Cfg:          cfg,
		Rdb:          rdb,
		Media:        mediaStore,
		Boardings:    repository.NewBoarding(colls.Boardings),
		Taxis:        repository.NewResource[models.Taxi](colls.Taxis),
		Shops:        repository.NewResource[models.Shop](colls.Shops),
		Pharmacies:   repository.NewResource[models.Pharmacy](colls.Pharmacies),
		MediCenters:  repository.NewResource[models.MediCenter](colls.MediCenters),
		Skills:       repository.NewResource[models.Skill](colls.Skills),
		Ads:          repository.NewResource[models.Ad](colls.Ads),
		RentItems:    repository.NewResource[models.RentItem](colls.RentItems),
		Students:     repository.NewAccounts[models.Student](colls.Students),
		Providers:    repository.NewAccounts[models.Provider](colls.Providers),
		MediaHandler: mediaHandler,
	})

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "token"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
