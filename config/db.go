package config

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the typed collection handles the repositories work with.
type Collections struct {
	Boardings   *mongo.Collection
	Taxis       *mongo.Collection
	Shops       *mongo.Collection
	Pharmacies  *mongo.Collection
	MediCenters *mongo.Collection
	Skills      *mongo.Collection
	Ads         *mongo.Collection
	RentItems   *mongo.Collection
	Students    *mongo.Collection
	Providers   *mongo.Collection
}

func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	log.Info().Msg("Connected to MongoDB")
	return client, nil
}

func NewCollections(client *mongo.Client, cfg *Config) *Collections {
	db := client.Database(cfg.DBName)
	return &Collections{
		Boardings:   db.Collection("boardings"),
		Taxis:       db.Collection("taxis"),
		Shops:       db.Collection("shops"),
		Pharmacies:  db.Collection("pharmacies"),
		MediCenters: db.Collection("medicenters"),
		Skills:      db.Collection("skills"),
		Ads:         db.Collection("ads"),
		RentItems:   db.Collection("rentitems"),
		Students:    db.Collection("students"),
		Providers:   db.Collection("providers"),
	}
}

func CloseDB(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Error().Err(err).Msg("Error closing MongoDB connection")
		return
	}
	log.Info().Msg("MongoDB connection closed")
}
