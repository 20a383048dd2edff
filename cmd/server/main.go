package main

import (
	"log"

	"github.com/alligatorO15/wed-planner/internal/api"
	"github.com/alligatorO15/wed-planner/internal/config"
	"github.com/alligatorO15/wed-planner/internal/cron"
	"github.com/alligatorO15/wed-planner/internal/database"
	"github.com/alligatorO15/wed-planner/internal/logger"
	"github.com/alligatorO15/wed-planner/internal/mailer"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// загрузка .env файла
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	// загрузка конфигурации
	cfg := config.Load()
	logger.Init(cfg.Env)

	// инициализация базы данных
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	// запуск миграций
	if err := database.RunMigrations(db); err != nil {
		logger.Log.Fatalf("Ошибка выполнения миграций: %v", err)
	}

	// шаблоны писем
	templates, err := config.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		logger.Log.Fatalf("Ошибка загрузки шаблонов писем: %v", err)
	}

	// инициализация репозиториев и сервисов
	repos := repository.NewRepositories(db)
	m := mailer.New(cfg)
	services := service.NewServices(repos, m, templates, cfg)

	if !m.Enabled() {
		logger.Log.Warn("SMTP не настроен, рассылка приглашений отключена")
	}

	// фоновые задачи: напоминания и чистка токенов
	scheduler := cron.NewScheduler(repos, services.Invitation, m)
	scheduler.Start()
	defer scheduler.Stop()

	// инициализация и запуск API сервера
	server := api.NewServer(cfg, services)

	logger.Log.Infof("Запуск сервера WedPlanner на порту %s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
