package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Storage StorageConfig
	Sweep   SweepConfig
	Log     LogConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Env     string
	BaseURL string // URL หลักของแอป ใช้ประกอบ download link (เช่น http://localhost:8080)
}

type MongoConfig struct {
	URI    string // mongodb://localhost:27017
	DBName string
}

// RedisConfig สำหรับ session store
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName string
	TTLHours   int  // อายุ session ใน Redis และ cookie
	Secure     bool // ส่ง cookie เฉพาะ HTTPS
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string // สำหรับ local: ./uploads
	MaxUploadSize int64  // ขนาดไฟล์สูงสุดที่อัปโหลดได้ (bytes)

	// เปิด auth gate สำหรับ upload/download routes
	// ตั้ง false ถ้าต้องการ public share links แบบเดิม
	RequireAuthForFileRoutes bool

	// S3-Compatible Storage (MinIO / R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
}

// SweepConfig สำหรับ job เก็บกวาดไฟล์กำพร้า (story ถูกลบแต่ไฟล์ยังอยู่)
type SweepConfig struct {
	Enabled bool
	Cron    string // cron expression เช่น "0 3 * * *"
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	sessionSecure := getEnv("SESSION_COOKIE_SECURE", "false") == "true"

	// 100MB default ตาม limit ของ upload form
	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "104857600"), 10, 64)
	requireAuthForFiles := getEnv("FILE_ROUTES_REQUIRE_AUTH", "true") == "true"
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	sweepEnabled := getEnv("SWEEP_ENABLED", "true") == "true"

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "CourseHub"),
			Port:    getEnv("APP_PORT", "8080"),
			Env:     getEnv("APP_ENV", "development"),
			BaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),
		},
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getEnv("MONGO_DB", "coursehub"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "sid"),
			TTLHours:   sessionTTL,
			Secure:     sessionSecure,
		},
		Storage: StorageConfig{
			Type:                     getEnv("STORAGE_TYPE", "local"),
			BasePath:                 getEnv("STORAGE_BASE_PATH", "./uploads"),
			MaxUploadSize:            maxUploadSize,
			RequireAuthForFileRoutes: requireAuthForFiles,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "uploads"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
			},
		},
		Sweep: SweepConfig{
			Enabled: sweepEnabled,
			Cron:    getEnv("SWEEP_CRON", "0 3 * * *"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
