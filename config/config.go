package config

import (
	"errors"
	"log"
	"os"

	"pizzeria-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func init() {
	// Process-wide: totals serialize as plain JSON numbers, e.g. 55.0
	// rather than "55".
	decimal.MarshalJSONWithoutQuotes = true
}

// JWTSecret signs bearer tokens. Load() replaces it from the environment.
var JWTSecret = []byte("pizzeria_del_gatito_secret_key")

// Load reads .env (if present) and applies environment overrides.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		JWTSecret = []byte(secret)
	} else {
		log.Println("WARNING: JWT_SECRET not set, using fallback secret — do not do this in production")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database, migrates the schema and seeds baseline rows.
// Fatal on failure: the API is useless without its store.
func InitDB() {
	if err := ConnectDB(getEnv("DATABASE_PATH", "pizzeria.db")); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := SeedCatalog(DB); err != nil {
		log.Fatal("Failed to seed pizza catalog:", err)
	}
	if err := SeedAdminUser(DB); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	log.Println("Database connected, migrated and seeded")
}

// ConnectDB opens the given sqlite DSN, assigns the package-level DB and
// auto-migrates all models. Split out from InitDB so tests can point it at
// an in-memory database.
func ConnectDB(dsn string) error {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// sqlite allows a single writer, and in-memory databases exist per
	// connection. One pooled connection covers both.
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Pizza{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderHistory{},
		&models.OrderHistoryItem{},
		&models.OrderStatusChange{},
	); err != nil {
		return err
	}

	DB = db
	return nil
}

// SeedCatalog inserts the pizza menu if the rows are not there yet.
func SeedCatalog(db *gorm.DB) error {
	pizzas := []models.Pizza{
		{Slug: "Especial-Del-Gatito", Name: "Especial Del Gatito", Price: decimal.NewFromFloat(35.0)},
		{Slug: "Hawaiana", Name: "Hawaiana", Price: decimal.NewFromFloat(30.0)},
		{Slug: "margherita", Name: "Margherita", Price: decimal.NewFromFloat(25.0)},
		{Slug: "pepperoni", Name: "Pepperoni", Price: decimal.NewFromFloat(30.0)},
		{Slug: "calabresa", Name: "Calabresa", Price: decimal.NewFromFloat(23.0)},
		{Slug: "quatro-queijos", Name: "Quatro Queijos", Price: decimal.NewFromFloat(32.0)},
	}
	for _, p := range pizzas {
		if err := db.Where(models.Pizza{Slug: p.Slug}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdminUser ensures the privileged account exists as an ordinary user
// row distinguished only by its role. Identity is always resolved from the
// credential on each request; nothing about this account is cached.
func SeedAdminUser(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "admin@pizzaria.com")

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin Master",
		Email:        email,
		Phone:        "(51) 99999-0000",
		Address:      "Rua Principal, 0",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin user created:", email)
	return nil
}
