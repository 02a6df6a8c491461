package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"gallery-backend/internal/config"
	"gallery-backend/internal/infrastructure/kv"
	"gallery-backend/internal/infrastructure/storage"
	"gallery-backend/pkg/jwt"

	"gallery-backend/internal/domains/archive"
	archiveHandler "gallery-backend/internal/domains/archive/handler"
	archiveRepo "gallery-backend/internal/domains/archive/repository"
	archiveService "gallery-backend/internal/domains/archive/service"
	"gallery-backend/internal/domains/artwork"
	artworkHandler "gallery-backend/internal/domains/artwork/handler"
	artworkRepo "gallery-backend/internal/domains/artwork/repository"
	artworkService "gallery-backend/internal/domains/artwork/service"
	"gallery-backend/internal/domains/maintenance"
	maintenanceService "gallery-backend/internal/domains/maintenance/service"
	sessionHandler "gallery-backend/internal/domains/session/handler"
	"gallery-backend/internal/domains/upload"
	uploadHandler "gallery-backend/internal/domains/upload/handler"
	uploadService "gallery-backend/internal/domains/upload/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// Infrastructure layer - shared across all domains, singleton lifetime
	Config     *config.Config
	KV         *kv.RedisStore
	Storage    *storage.ObjectStorage
	JWTManager *jwt.Manager

	// Repository layer (data access)
	ArtworkRepo artwork.Repository
	ArchiveRepo archive.Repository

	// Service layer (business logic)
	ArtworkService     artwork.Service
	ArchiveService     archive.Service
	UploadService      upload.Service
	MaintenanceService maintenance.Service

	// Handler layer (HTTP)
	ArtworkHandler *artworkHandler.ArtworkHandler
	ArchiveHandler *archiveHandler.ArchiveHandler
	UploadHandler  *uploadHandler.UploadHandler
	SessionHandler *sessionHandler.SessionHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (KV, object storage) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: CONNECT KEY-VALUE STORE
	// ========================================
	store := kv.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.KV = store
	log.Println("✅ Key-value store connected")

	// ========================================
	// STEP 3: OBJECT STORAGE + BUCKET BOOTSTRAP
	// ========================================
	objectStorage, err := storage.NewObjectStorage(cfg.MinIO, cfg.PublicBuckets())
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage: %w", err)
	}

	buckets := []string{
		cfg.Storage.ArtworksBucket,
		cfg.Storage.ArchiveBucket,
		cfg.Storage.LegacyBucket,
	}
	if err := objectStorage.EnsureBuckets(ctx, buckets); err != nil {
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}
	c.Storage = objectStorage
	log.Println("✅ Object storage ready")

	// ========================================
	// STEP 4: SESSION MANAGER
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.SessionExpiry)

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.ArtworkRepo = artworkRepo.NewKVRepository(store)
	c.ArchiveRepo = archiveRepo.NewKVRepository(store)

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	c.ArtworkService = artworkService.NewArtworkService(c.ArtworkRepo)
	c.ArchiveService = archiveService.NewArchiveService(c.ArchiveRepo, objectStorage, cfg.Storage.LegacyBucket)
	c.UploadService = uploadService.NewUploadService(objectStorage, cfg.Storage)
	c.MaintenanceService = maintenanceService.NewReconcileService(c.ArtworkRepo, c.ArchiveRepo, objectStorage, cfg.PublicBuckets())

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.ArtworkHandler = artworkHandler.NewArtworkHandler(c.ArtworkService)
	c.ArchiveHandler = archiveHandler.NewArchiveHandler(c.ArchiveService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
	c.SessionHandler = sessionHandler.NewSessionHandler(c.JWTManager, cfg.Auth.AdminPasswordHash)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.KV != nil {
		if err := c.KV.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis client: %v", err)
		}
	}
}
