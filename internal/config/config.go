package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress          string        // Адрес и порт запуска сервиса
	DatabaseURI         string        // URI подключения к БД
	RedisAddress        string        // Адрес Redis для кеша скоринга (пусто — кеш отключен)
	NotifierAddress     string        // Адрес внешнего диспетчера уведомлений (пусто — доставка отключена)
	RestrictionsAddress string        // Адрес сервиса ограничений пользователей (пусто — проверка отключена)
	JWTSecret           string        // Секретный ключ для JWT
	JWTTokenTTL         time.Duration // Время жизни JWT токена
	LogLevel            string        // Уровень логирования

	// Конфигурация пула сверки
	SweepWorkers    int           // Количество воркеров
	SweepQueueSize  int           // Размер очереди заказов
	SweepInterval   time.Duration // Интервал прохода сверки
	ReminderHorizon time.Duration // За сколько до срока отправлять напоминание
	DispatchBatch   int           // Размер порции outbox за проход
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:     24 * time.Hour,
		LogLevel:        "info",
		SweepWorkers:    3,
		SweepQueueSize:  100,
		SweepInterval:   time.Minute,
		ReminderHorizon: 72 * time.Hour,
		DispatchBatch:   50,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.NotifierAddress, "n", "", "notification dispatcher address")
	flag.StringVar(&cfg.RestrictionsAddress, "r", "", "user restrictions service address")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envRedisAddr, ok := os.LookupEnv("REDIS_ADDR"); ok {
		cfg.RedisAddress = envRedisAddr
	}

	if envNotifierAddr, ok := os.LookupEnv("NOTIFIER_ADDRESS"); ok {
		cfg.NotifierAddress = envNotifierAddr
	}

	if envRestrictionsAddr, ok := os.LookupEnv("RESTRICTIONS_ADDRESS"); ok {
		cfg.RestrictionsAddress = envRestrictionsAddr
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Конфигурация пула сверки из env
	if envSweepWorkers, ok := os.LookupEnv("SWEEP_WORKERS"); ok {
		if size, err := strconv.Atoi(envSweepWorkers); err == nil && size > 0 {
			cfg.SweepWorkers = size
		}
	}

	if envSweepQueueSize, ok := os.LookupEnv("SWEEP_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envSweepQueueSize); err == nil && size > 0 {
			cfg.SweepQueueSize = size
		}
	}

	if envSweepInterval, ok := os.LookupEnv("SWEEP_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envSweepInterval); err == nil && interval > 0 {
			cfg.SweepInterval = interval
		}
	}

	if envReminderHorizon, ok := os.LookupEnv("REMINDER_HORIZON"); ok {
		if horizon, err := time.ParseDuration(envReminderHorizon); err == nil && horizon > 0 {
			cfg.ReminderHorizon = horizon
		}
	}

	if envDispatchBatch, ok := os.LookupEnv("DISPATCH_BATCH"); ok {
		if batch, err := strconv.Atoi(envDispatchBatch); err == nil && batch > 0 {
			cfg.DispatchBatch = batch
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}
