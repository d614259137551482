package database

import (
	"fmt"
	"math/rand"
	"time"

	"garden-backend/internal/database/models"
	applog "garden-backend/internal/logger"
	"garden-backend/internal/sticker"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SeedDemoData    bool
}

// Initialize opens a Postgres connection, creates the schema, applies the
// additive column migrations, and heals stale sticker shapes.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if opts.SeedDemoData {
		if err := SeedDemoProjects(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates the projects table and applies the additive migrations for
// columns added after the first release. There is no rollback path; every
// migration only adds or backfills.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return fmt.Errorf("migrate projects: %w", err)
	}

	// AutoMigrate covers fresh databases; older databases predate the word
	// pair and sticker color columns.
	m := db.Migrator()
	for _, field := range []string{"Adjective", "Feeling", "StickerColor"} {
		if !m.HasColumn(&models.Project{}, field) {
			if err := m.AddColumn(&models.Project{}, field); err != nil {
				return fmt.Errorf("add column %s: %w", field, err)
			}
		}
	}

	return healStickerShapes(db)
}

// healStickerShapes backfills fruitType from the adjective for rows written
// before shape derivation moved server-side. Runs once per startup; a healthy
// database updates zero rows.
func healStickerShapes(db *gorm.DB) error {
	log := applog.New()
	for _, adjective := range sticker.Adjectives {
		shape := sticker.ShapeFor(adjective)
		res := db.Model(&models.Project{}).
			Where("adjective = ? AND \"fruitType\" <> ?", adjective, shape).
			Update("fruitType", shape)
		if res.Error != nil {
			return fmt.Errorf("heal sticker shapes: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			log.WithFields(map[string]interface{}{
				"adjective": adjective,
				"rows":      res.RowsAffected,
			}).Info("healed stale sticker shapes")
		}
	}
	return nil
}

// SeedDemoProjects plants three demo projects in an empty garden so a fresh
// install is not a blank page.
func SeedDemoProjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	mapper := sticker.NewMapper()
	demos := []struct {
		name, location, creator, link string
		adjective, feeling            string
	}{
		{"AI Assistant Bot", "Innovation Lab", "Alex Chen", "https://example.com/ai-bot", "Fresh", "Excited"},
		{"Customer Dashboard 2.0", "UX Studio", "Sarah Kim", "https://example.com/dashboard", "Bold", "Inspired"},
		{"Data Pipeline Optimizer", "Backend Cave", "Mike Johnson", "https://example.com/pipeline", "Revolutionary", "Energized"},
	}

	for i, d := range demos {
		desc := mapper.Generate(d.adjective, d.feeling)
		p := models.Project{
			ProjectName:  d.name,
			Location:     d.location,
			Creator:      d.creator,
			ProjectLink:  d.link,
			Adjective:    d.adjective,
			Feeling:      d.feeling,
			FruitType:    desc.Shape,
			StickerColor: desc.Color,
			PositionX:    10 + rand.Float64()*80,
			PositionY:    20 + rand.Float64()*60,
			GardenRow:    i / 3,
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("seed demo projects: %w", err)
		}
	}

	applog.New().Info("Demo projects planted in the garden")
	return nil
}
