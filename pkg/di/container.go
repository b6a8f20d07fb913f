package di

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"coursehub/application/serviceimpl"
	"coursehub/domain/ports"
	"coursehub/domain/repositories"
	"coursehub/infrastructure/mongodb"
	redispkg "coursehub/infrastructure/redis"
	"coursehub/infrastructure/storage"
	"coursehub/interfaces/api/handlers"
	"coursehub/pkg/config"
	"coursehub/pkg/logger"
	"coursehub/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	MongoClient    *mongo.Client
	DB             *mongo.Database
	RedisClient    *redispkg.Client
	Storage        ports.StoragePort
	EventScheduler scheduler.EventScheduler

	// Repositories
	CourseRepository  repositories.CourseRepository
	StoryRepository   repositories.StoryRepository
	FileRepository    repositories.FileRepository
	UserRepository    repositories.UserRepository
	SessionRepository repositories.SessionRepository

	// Services
	UserService    *serviceimpl.UserServiceImpl
	SessionService *serviceimpl.SessionServiceImpl
	CourseService  *serviceimpl.CourseServiceImpl
	StoryService   *serviceimpl.StoryServiceImpl
	FileService    *serviceimpl.FileServiceImpl
	OrphanSweep    *serviceimpl.OrphanSweepService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	// เชื่อม MongoDB ไม่ได้ = ไม่ start process
	client, db, err := mongodb.NewDatabase(mongodb.DatabaseConfig{
		URI:    c.Config.Mongo.URI,
		DBName: c.Config.Mongo.DBName,
	})
	if err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	c.MongoClient = client
	c.DB = db

	redisClient, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.RedisClient = redisClient

	// เลือก storage provider ตาม config
	switch c.Config.Storage.Type {
	case "s3":
		c.Storage, err = storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
		})
	default:
		c.Storage, err = storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}

	logger.Info("Storage initialized", "provider", c.Storage.GetProviderName())
	return nil
}

func (c *Container) initRepositories() {
	c.CourseRepository = mongodb.NewCourseRepository(c.DB)
	c.StoryRepository = mongodb.NewStoryRepository(c.DB)
	c.FileRepository = mongodb.NewFileRepository(c.DB)
	c.UserRepository = mongodb.NewUserRepository(c.DB)
	c.SessionRepository = redispkg.NewSessionRepository(c.RedisClient)
}

func (c *Container) initServices() {
	sessionTTL := time.Duration(c.Config.Session.TTLHours) * time.Hour

	c.UserService = serviceimpl.NewUserService(c.UserRepository)
	c.SessionService = serviceimpl.NewSessionService(c.SessionRepository, sessionTTL)
	c.CourseService = serviceimpl.NewCourseService(c.CourseRepository, c.StoryRepository)
	c.StoryService = serviceimpl.NewStoryService(c.StoryRepository, c.UserRepository)
	c.FileService = serviceimpl.NewFileService(
		c.FileRepository,
		c.StoryRepository,
		c.UserRepository,
		c.Storage,
		c.Config.App.BaseURL,
		c.Config.Storage.MaxUploadSize,
	)
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	c.OrphanSweep = serviceimpl.NewOrphanSweepService(
		serviceimpl.OrphanSweepConfig{Cron: c.Config.Sweep.Cron},
		c.FileRepository,
		c.StoryRepository,
		c.Storage,
		c.EventScheduler,
	)

	if c.Config.Sweep.Enabled {
		if err := c.OrphanSweep.RegisterSweepJob(); err != nil {
			return fmt.Errorf("failed to register sweep job: %w", err)
		}
		c.EventScheduler.Start()
	}

	return nil
}

// GetConfig return config
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices รวม service สำหรับสร้าง handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:         c.UserService,
		SessionService:      c.SessionService,
		CourseService:       c.CourseService,
		StoryService:        c.StoryService,
		FileService:         c.FileService,
		SessionCookieName:   c.Config.Session.CookieName,
		SessionCookieSecure: c.Config.Session.Secure,
	}
}

// Cleanup ปิด connection ตอน shutdown
func (c *Container) Cleanup() error {
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close redis", "error", err)
		}
	}

	if c.MongoClient != nil {
		if err := mongodb.Disconnect(c.MongoClient); err != nil {
			return err
		}
	}

	return nil
}
