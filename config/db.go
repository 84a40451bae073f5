package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reservas-backend/models"
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
	dbName := envOrDefault("DB_NAME", "reservas_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and seeds
// baseline data. Sets config.DB on success.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.StandardLogger(),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate runs AutoMigrate in parent-before-child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.Customer{},
		&models.Room{},
		&models.Reservation{},
		&models.Payment{},
	)
}

// SeedDatabase inserts baseline rows on an empty database: the settings row,
// a default administrator and a couple of rooms so the booking flow works
// out of the box.
func SeedDatabase(db *gorm.DB) {
	var settingsCount int64
	db.Model(&models.HotelSetting{}).Count(&settingsCount)
	if settingsCount == 0 {
		setting := models.HotelSetting{
			Name:                  envOrDefault("HOTEL_NAME", "Hotel Reservas"),
			DefaultDepositPercent: 30,
		}
		if err := db.Create(&setting).Error; err != nil {
			log.WithError(err).Warn("failed to seed hotel settings")
		} else {
			log.Info("hotel settings seeded")
		}
	}

	var adminCount int64
	db.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		admin := models.Admin{
			AdminID:  strings.ReplaceAll(uuid.NewString(), "-", ""),
			FullName: "Default Admin",
			Email:    envOrDefault("ADMIN_EMAIL", "admin@hotel.local"),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.WithError(err).Warn("failed to seed default admin")
		} else {
			// The admin id is the login credential; surface it once.
			log.WithFields(log.Fields{
				"admin_id": admin.AdminID,
				"email":    admin.Email,
			}).Info("default admin seeded")
		}
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomCode: uuid.NewString(), Type: "Single", Capacity: 1, Price: 45000, Status: models.RoomStatusAvailable},
			{RoomCode: uuid.NewString(), Type: "Double", Capacity: 2, Price: 70000, Status: models.RoomStatusAvailable},
			{RoomCode: uuid.NewString(), Type: "Suite", Capacity: 4, Price: 120000, Status: models.RoomStatusAvailable},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.WithError(err).Warn("failed to seed rooms")
		} else {
			log.Info("rooms seeded")
		}
	}
}
