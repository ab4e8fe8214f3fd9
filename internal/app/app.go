// Package app assembles the services the HTTP layer and CLI work with.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/seosites/seosites/backend/go-api/internal/admins"
	"github.com/seosites/seosites/backend/go-api/internal/config"
	"github.com/seosites/seosites/backend/go-api/internal/content"
	"github.com/seosites/seosites/backend/go-api/internal/database"
	"github.com/seosites/seosites/backend/go-api/internal/files"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/internal/store"
	"github.com/seosites/seosites/backend/go-api/internal/tokens"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collections groups one store per entity.
type Collections struct {
	Projects     store.Collection[models.Project]
	Services     store.Collection[models.Service]
	Testimonials store.Collection[models.Testimonial]
	Technologies store.Collection[models.Technology]
	Stats        store.Collection[models.Stat]
	HeroContents store.Collection[models.HeroContent]
	CompanyInfos store.Collection[models.CompanyInfo]
	ProcessSteps store.Collection[models.ProcessStep]
	Admins       store.Collection[models.Admin]
}

// MemoryCollections returns in-process stores with the same unique fields as the Mongo indexes.
func MemoryCollections() Collections {
	return Collections{
		Projects:     store.NewMemory[models.Project](),
		Services:     store.NewMemory[models.Service](),
		Testimonials: store.NewMemory[models.Testimonial](),
		Technologies: store.NewMemory[models.Technology]("name"),
		Stats:        store.NewMemory[models.Stat](),
		HeroContents: store.NewMemory[models.HeroContent]("page"),
		CompanyInfos: store.NewMemory[models.CompanyInfo]("key"),
		ProcessSteps: store.NewMemory[models.ProcessStep](),
		Admins:       store.NewMemory[models.Admin]("email"),
	}
}

func MongoCollections(db *mongo.Database) Collections {
	return Collections{
		Projects:     store.NewMongo[models.Project](db.Collection(database.Projects)),
		Services:     store.NewMongo[models.Service](db.Collection(database.Services)),
		Testimonials: store.NewMongo[models.Testimonial](db.Collection(database.Testimonials)),
		Technologies: store.NewMongo[models.Technology](db.Collection(database.Technologies)),
		Stats:        store.NewMongo[models.Stat](db.Collection(database.Stats)),
		HeroContents: store.NewMongo[models.HeroContent](db.Collection(database.HeroContents)),
		CompanyInfos: store.NewMongo[models.CompanyInfo](db.Collection(database.CompanyInfos)),
		ProcessSteps: store.NewMongo[models.ProcessStep](db.Collection(database.ProcessSteps)),
		Admins:       store.NewMongo[models.Admin](db.Collection(database.Admins)),
	}
}

// App is built once at startup and handed to handlers and commands.
type App struct {
	Config      *config.Config
	Collections Collections

	Projects     *content.Projects
	Services     *content.Services
	Testimonials *content.Testimonials
	Technologies *content.Technologies
	Stats        *content.Stats
	HeroContents *content.HeroContents
	Company      *content.Company
	ProcessSteps *content.ProcessSteps

	Admins   *admins.Service
	Tokens   *tokens.Issuer
	Files    files.Store
	Uploader *files.Uploader
	Redis    *redis.Client

	// Storage reports "mongo" or "memory".
	Storage string
	ping    func(context.Context) error
	closers []func(context.Context) error
}

// New wires services over the given collections and file store.
func New(cfg *config.Config, cols Collections, fs files.Store) *App {
	rec := files.NewReconciler(fs)
	iss := tokens.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expire)
	return &App{
		Config:       cfg,
		Collections:  cols,
		Projects:     content.NewProjects(cols.Projects, rec),
		Services:     content.NewServices(cols.Services),
		Testimonials: content.NewTestimonials(cols.Testimonials, rec),
		Technologies: content.NewTechnologies(cols.Technologies),
		Stats:        content.NewStats(cols.Stats),
		HeroContents: content.NewHeroContents(cols.HeroContents),
		Company:      content.NewCompany(cols.CompanyInfos, cfg.Company.DefaultName),
		ProcessSteps: content.NewProcessSteps(cols.ProcessSteps),
		Admins:       admins.NewService(cols.Admins, iss),
		Tokens:       iss,
		Files:        fs,
		Uploader:     files.NewUploader(fs, cfg.Upload.MaxFileSize),
		Storage:      "memory",
	}
}

// Build connects external dependencies according to cfg. Outside production an
// unreachable MongoDB falls back to the in-memory store.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	fs, err := buildFileStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cols := MemoryCollections()
	var client *mongo.Client
	if cfg.MongoDB.URI != "" {
		client, err = database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		switch {
		case err == nil:
			db := client.Database(cfg.MongoDB.Database)
			if err := database.EnsureIndexes(ctx, db); err != nil {
				_ = client.Disconnect(ctx)
				return nil, err
			}
			cols = MongoCollections(db)
		case cfg.Server.IsProduction():
			return nil, fmt.Errorf("mongodb unavailable: %w", err)
		default:
			logger.Warnf("could not connect to MongoDB, using in-memory store: %v", err)
			client = nil
		}
	}

	a := New(cfg, cols, fs)
	if client != nil {
		a.Storage = "mongo"
		a.ping = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		a.closers = append(a.closers, client.Disconnect)
	}

	if addr := cfg.Redis.Addr(); addr != "" {
		rc := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
			_ = rc.Close()
		} else {
			a.Redis = rc
			a.closers = append(a.closers, func(context.Context) error { return rc.Close() })
			logger.Infof("connected to Redis at %s", addr)
		}
	}
	return a, nil
}

func buildFileStore(ctx context.Context, cfg *config.Config) (files.Store, error) {
	if cfg.Upload.Driver == "minio" {
		return files.NewMinIOStore(ctx, files.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
		})
	}
	return files.NewLocalStore(cfg.Upload.Dir)
}

// Ping checks the document store; the memory store is always ready.
func (a *App) Ping(ctx context.Context) error {
	if a.ping == nil {
		return nil
	}
	return a.ping(ctx)
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
