package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forhad-fhj/SkillBridge/catalog"
	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/events"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/gemini"
	"github.com/forhad-fhj/SkillBridge/storage"
)

// openStore connects the configured persistence backend
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageFirestore:
		log.Println("Initializing Firestore client...")
		return storage.NewFirestoreClient(ctx, cfg)
	case config.StoragePostgres:
		log.Println("Initializing Postgres store...")
		return storage.NewPostgresStore(ctx, cfg.DatabaseURL)
	case config.StorageMemory, "":
		log.Println("Using in-memory store")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// openBlobStore connects resume storage. It returns nil when disabled.
func openBlobStore(ctx context.Context, cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.BlobBackend {
	case config.BlobGCS:
		log.Println("Initializing Cloud Storage client...")
		return storage.NewCloudStorageClient(ctx, cfg)
	case config.BlobR2:
		log.Println("Initializing R2 client...")
		return storage.NewR2Client(ctx, cfg)
	case config.BlobNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.BlobBackend)
	}
}

// openPublisher connects to RabbitMQ when configured
func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.RabbitMQURL == "" {
		return events.NoopPublisher{}, nil
	}
	log.Println("Connecting to RabbitMQ...")
	return events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
}

// newSkillExtractor returns the configured extractor and a closer for it
func newSkillExtractor(ctx context.Context, cfg *config.Config) (extract.SkillExtractor, io.Closer, error) {
	if cfg.SkillExtractor == config.ExtractorGemini {
		log.Println("Initializing Gemini skill extractor...")
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, client, nil
	}
	return extract.NewTaxonomyExtractor(extract.DefaultTaxonomy()), nil, nil
}

// loadAliases resolves the SKILL_ALIASES setting: "default", "none", or the
// path of a JSON or YAML file mapping canonical names to variants.
func loadAliases(setting string) (engine.AliasTable, error) {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "", "default":
		return engine.DefaultAliases(), nil
	case "none":
		return nil, nil
	}

	data, err := os.ReadFile(setting)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var aliases engine.AliasTable
	switch strings.ToLower(filepath.Ext(setting)) {
	case ".json":
		err = json.Unmarshal(data, &aliases)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &aliases)
	default:
		return nil, fmt.Errorf("unsupported alias file type: %s", filepath.Ext(setting))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", setting, err)
	}
	return aliases, nil
}

// newEngine builds the analysis engine and its resource catalog from config
func newEngine(cfg *config.Config) (*engine.Engine, *catalog.Catalog, error) {
	aliases, err := loadAliases(cfg.SkillAliases)
	if err != nil {
		return nil, nil, err
	}

	resources, err := catalog.Load(cfg.ResourceCatalogPath, catalog.Options{SearchFallback: true})
	if err != nil {
		return nil, nil, err
	}

	return engine.New(engineOptions(cfg, aliases, resources)), resources, nil
}

func engineOptions(cfg *config.Config, aliases engine.AliasTable, resources engine.ResourceCatalog) engine.Options {
	opts := engine.DefaultOptions()
	opts.Aliases = aliases
	opts.Catalog = resources
	opts.Tiers = engine.TierOptions{
		CriticalFrequency: cfg.CriticalFrequency,
		HighFrequency:     cfg.HighFrequency,
	}
	if cfg.RoadmapMaxResources > 0 {
		opts.Roadmap.MaxResources = cfg.RoadmapMaxResources
	}
	opts.Roadmap.TopK = cfg.RoadmapTopK
	return opts
}
