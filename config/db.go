package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-reservation-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
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
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_reservations")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase creates the default admin and a starter room catalog on an
// empty database. Safe to run on every boot.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_DEFAULT_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: envOrDefault("ADMIN_DEFAULT_USERNAME", "admin@hotel.local"),
				Password: string(hash),
				Role:     models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		amenities := func(items ...string) datatypes.JSON {
			raw, _ := json.Marshal(items)
			return datatypes.JSON(raw)
		}
		rooms := []models.Room{
			{RoomNumber: "101", Name: "Garden Single", Type: models.RoomTypeSingle, Price: 75, MaxOccupancy: 1, IsAvailable: true, Amenities: amenities("wifi", "tv")},
			{RoomNumber: "102", Name: "Garden Double", Type: models.RoomTypeDouble, Price: 100, MaxOccupancy: 2, IsAvailable: true, Amenities: amenities("wifi", "tv", "minibar")},
			{RoomNumber: "201", Name: "Seaview Suite", Type: models.RoomTypeSuite, Price: 180, MaxOccupancy: 4, IsAvailable: true, Amenities: amenities("wifi", "tv", "minibar", "balcony")},
			{RoomNumber: "301", Name: "Deluxe Corner", Type: models.RoomTypeDeluxe, Price: 240, MaxOccupancy: 4, IsAvailable: true, Amenities: amenities("wifi", "tv", "minibar", "balcony", "bathtub")},
			{RoomNumber: "401", Name: "Presidential Suite", Type: models.RoomTypePresidential, Price: 500, MaxOccupancy: 6, IsAvailable: true, Amenities: amenities("wifi", "tv", "minibar", "balcony", "bathtub", "kitchen")},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Room catalog seeded")
		}
	}
}

// ConnectDatabase opens the MySQL connection, runs migrations and seeds.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
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

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Room{},
		&models.Booking{},
		&models.Contact{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
