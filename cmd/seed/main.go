package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"coursehub/domain/models"
	"coursehub/infrastructure/mongodb"
	"coursehub/pkg/config"
	"coursehub/pkg/logger"
)

// seeder เป็นทางเดียวที่สร้าง Course (web ไม่มีหน้า create)
//
//	go run ./cmd/seed -i   import จาก data/courses.json
//	go run ./cmd/seed -d   ลบ course ทั้งหมด
func main() {
	importFlag := flag.Bool("i", false, "import courses from data file")
	deleteFlag := flag.Bool("d", false, "delete all courses")
	dataFile := flag.String("file", "data/courses.json", "course data file")
	flag.Parse()

	if *importFlag == *deleteFlag {
		fmt.Fprintln(os.Stderr, "usage: seed -i | seed -d")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: "text", Output: "stdout"}); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	client, db, err := mongodb.NewDatabase(mongodb.DatabaseConfig{
		URI:    cfg.Mongo.URI,
		DBName: cfg.Mongo.DBName,
	})
	if err != nil {
		logger.Error("Storage unavailable", "error", err)
		os.Exit(1)
	}
	defer mongodb.Disconnect(client)

	courseRepo := mongodb.NewCourseRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *deleteFlag {
		deleted, err := courseRepo.DeleteAll(ctx)
		if err != nil {
			logger.Error("Failed to delete courses", "error", err)
			os.Exit(1)
		}
		logger.Info("Data destroyed", "deleted", deleted)
		return
	}

	data, err := os.ReadFile(*dataFile)
	if err != nil {
		logger.Error("Failed to read data file", "file", *dataFile, "error", err)
		os.Exit(1)
	}

	var courses []*models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		logger.Error("Failed to parse data file", "file", *dataFile, "error", err)
		os.Exit(1)
	}

	if err := courseRepo.CreateMany(ctx, courses); err != nil {
		logger.Error("Failed to import courses", "error", err)
		os.Exit(1)
	}

	logger.Info("Data imported", "count", len(courses))
}
