package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cottagesheets/internal/config"
	"cottagesheets/internal/database"
	"cottagesheets/internal/domain"
	"cottagesheets/internal/logger"
)

// Базовый прайс услуг, как в рабочей таблице администраторов.
var defaultServices = []string{
	"Баня",
	"Веники",
	"Доп часы",
	"Доп гости",
	"Игровая комната",
	"Спа зона",
	"Штраф",
	"Продление доп день",
	"Другие платежи",
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal().Err(err).Msg("logger")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}

	log.Info().Msg("Выполняем AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Booking{},
		&domain.Service{},
		&domain.BookingService{},
		&domain.Payment{},
		&domain.Expense{},
		&domain.MonthlyPlan{},
		&domain.Realty{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	if err := upsertUser(db, cfg.AdminUsername, cfg.AdminPassword, domain.RoleAdmin); err != nil {
		log.Fatal().Err(err).Str("username", cfg.AdminUsername).Msg("не удалось создать администратора")
	}
	if err := upsertUser(db, cfg.UserUsername, cfg.UserPassword, domain.RoleUser); err != nil {
		log.Fatal().Err(err).Str("username", cfg.UserUsername).Msg("не удалось создать оператора")
	}

	if err := seedServices(db); err != nil {
		log.Fatal().Err(err).Msg("не удалось заполнить справочник услуг")
	}

	log.Info().Msg("Инициализация завершена")
}

// upsertUser создает учетную запись или обновляет пароль и роль существующей.
// Пароль из окружения считается источником истины.
func upsertUser(db *gorm.DB, username, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var user domain.User
	err = db.Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = domain.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Info().Str("username", username).Str("role", role).Msg("Пользователь создан")
	case err != nil:
		return err
	default:
		updates := map[string]any{
			"password_hash": string(hash),
			"role":          role,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		log.Info().Str("username", username).Str("role", role).Msg("Пользователь обновлен")
	}

	return nil
}

// seedServices дописывает недостающие услуги из базового прайса.
// Существующие не трогаем: их могли переименовать или отключить вручную.
func seedServices(db *gorm.DB) error {
	for _, name := range defaultServices {
		var existing domain.Service
		err := db.Where("name = ?", name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&domain.Service{Name: name, IsActive: true}).Error; err != nil {
				return err
			}
			log.Info().Str("name", name).Msg("Добавлена услуга")
		case err != nil:
			return err
		default:
			log.Info().Str("name", name).Msg("Услуга уже существует")
		}
	}

	return nil
}
