package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hoteldash-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveDialector picks MySQL when a DSN is configured and falls back to a
// local SQLite file, which covers the usual single-property install.
func resolveDialector() (gorm.Dialector, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			dsn, err := mysqlDSNFromURL(raw)
			if err != nil {
				return nil, err
			}
			return mysql.Open(dsn), nil
		}
		return mysql.Open(raw), nil
	}

	if host := strings.TrimSpace(os.Getenv("DB_HOST")); host != "" {
		user := envOrDefault("DB_USER", "root")
		pass := envOrDefault("DB_PASS", "")
		port := envOrDefault("DB_PORT", "3306")
		dbName := envOrDefault("DB_NAME", "hotel_dashboard")
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, dbName,
		)
		return mysql.Open(dsn), nil
	}

	return sqlite.Open(envOrDefault("SQLITE_PATH", "hotel_dashboard.db")), nil
}

func ConnectDatabase() error {
	dialector, err := resolveDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.StaffUser{},
		&models.Snapshot{},
	); err != nil {
		return err
	}

	SeedUsers(DB)
	return nil
}

// SeedUsers ensures the demo credential table exists. One account per role,
// shared demo password, bcrypt at rest.
func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&models.StaffUser{}).Count(&count)
	if count > 0 {
		log.Println("Users already seeded")
		return
	}

	password := envOrDefault("SEED_PASSWORD", "hotel123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash seed password: %v", err)
		return
	}

	users := []models.StaffUser{
		{Name: "Admin User", Email: "admin@hotel.com", Password: string(hash), Role: models.RoleAdmin, Phone: "+1-555-0123"},
		{Name: "Sarah Johnson", Email: "receptionist@hotel.com", Password: string(hash), Role: models.RoleReceptionist, Phone: "+1-555-0456"},
		{Name: "Elena Petrova", Email: "housekeeping@hotel.com", Password: string(hash), Role: models.RoleHousekeeping, Phone: "+1-555-0678"},
		{Name: "Marco Rossi", Email: "kitchen@hotel.com", Password: string(hash), Role: models.RoleKitchen, Phone: "+1-555-0891"},
		{Name: "John Customer", Email: "customer@example.com", Password: string(hash), Role: models.RoleCustomer, Phone: "+1-555-0789"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("warning: failed to seed users: %v", err)
		return
	}
	log.Println("Users seeded")
}
