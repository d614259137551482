package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"garden-backend/internal/config"
	"garden-backend/internal/database"
	"garden-backend/internal/database/models"
	"garden-backend/internal/sticker"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ProjectData mirrors one entry in scripts/data/projects.yaml
type ProjectData struct {
	ProjectName string `yaml:"project_name"`
	Location    string `yaml:"location"`
	Creator     string `yaml:"creator,omitempty"`
	ProjectLink string `yaml:"project_link,omitempty"`
	Adjective   string `yaml:"adjective,omitempty"`
	Feeling     string `yaml:"feeling,omitempty"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("🚀 Planting initial projects from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	created, skipped, err := loadProjectsFromYAML(db, "scripts/data/projects.yaml")
	if err != nil {
		log.Fatalf("Failed to load projects: %v", err)
	}

	log.Printf("✅ Garden ready: %d projects planted, %d already growing", created, skipped)
}

func connectWithRetry(dsn string, attempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			if sqlDB, derr := db.DB(); derr == nil && sqlDB.Ping() == nil {
				return db, nil
			}
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not reachable after %d attempts: %w", attempts, err)
}

// loadProjectsFromYAML upserts projects by name so reruns are safe.
func loadProjectsFromYAML(db *gorm.DB, path string) (created, skipped int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var file ProjectsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	mapper := sticker.NewMapper()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, data := range file.Projects {
		if data.ProjectName == "" || data.Location == "" {
			log.Printf("⚠️  Warning: skipping entry with missing name or location: %+v", data)
			continue
		}

		var existing models.Project
		findErr := db.Where(`"projectName" = ?`, data.ProjectName).First(&existing).Error
		if findErr == nil {
			skipped++
			continue
		}
		if findErr != gorm.ErrRecordNotFound {
			return created, skipped, findErr
		}

		desc := mapper.Generate(data.Adjective, data.Feeling)
		project := models.Project{
			ProjectName:  data.ProjectName,
			Location:     data.Location,
			Creator:      data.Creator,
			ProjectLink:  data.ProjectLink,
			Adjective:    data.Adjective,
			Feeling:      data.Feeling,
			FruitType:    desc.Shape,
			StickerColor: desc.Color,
			PositionX:    10 + rng.Float64()*80,
			PositionY:    20 + rng.Float64()*60,
			GardenRow:    rng.Intn(5),
		}
		if err := db.Create(&project).Error; err != nil {
			return created, skipped, fmt.Errorf("create %s: %w", data.ProjectName, err)
		}
		created++
	}

	return created, skipped, nil
}
