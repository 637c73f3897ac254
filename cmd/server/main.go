// @title           Sternkern Rent Nexus API
// @version         1.0
// @description     Property management backend: units, tenants, billing, payments, maintenance and reports

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"sternkern-rent-nexus/internal/app/routes"
	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"
	"sternkern-rent-nexus/internal/infrastructure/database"
	Logger "sternkern-rent-nexus/pkg/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Environment variables may already be set outside the .env file
	if err := godotenv.Load(); err != nil {
		Logger.Warning("could not load .env file: %v", err)
	} else {
		Logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	default:
		// AutoMigrate only adds new columns and tables
		if err := autoMigrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	ensureLandlordExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	printSystemInfo(pool)

	Logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models (adds new columns and tables only)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Unit{},
		&models.Tenant{},
		&models.Invoice{},
		&models.Payment{},
		&models.Maintenance{},
		&models.Utility{},
		&models.InventoryItem{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and runs the migration from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"users", "units", "tenants", "invoices", "payments",
		"maintenances", "utilities", "inventory",
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("failed to drop table: %v", err)
		}
	}

	return autoMigrate(db)
}

// ensureLandlordExists seeds the default landlord account on first start
func ensureLandlordExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Count(&count)

	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultLandlordPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash default password: %v", err)
		}

		landlord := models.User{
			Username: "landlord",
			Password: string(hashedPassword),
			Role:     models.RoleLandlord,
		}

		if err := db.Create(&landlord).Error; err != nil {
			log.Fatalf("failed to create default landlord account: %v", err)
		}

		log.Println("default landlord account created")
	}
}

// printSystemInfo logs pool and runtime information at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("database connection pool: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
