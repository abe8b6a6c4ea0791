package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/biosecret/go-crud/config"
	"github.com/biosecret/go-crud/database"
	"github.com/biosecret/go-crud/events"
	"github.com/biosecret/go-crud/handlers"
	"github.com/biosecret/go-crud/repository"
	"github.com/biosecret/go-crud/router"
	"github.com/biosecret/go-crud/store"
	"github.com/biosecret/go-crud/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

// SetupAndRunApp khởi động ứng dụng Fiber và chạy cho tới khi ctx bị hủy
func SetupAndRunApp(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	deps := handlers.Deps{
		Todos:  store.NewTodoStore(),
		Hasher: utils.NewPasswordHasher(utils.DefaultArgon2Params),
		Events: events.Nop{},
		Logger: log,
	}

	// Khởi động PostgreSQL nếu có DATABASE_URL
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
		defer func() {
			if err := database.Close(db); err != nil {
				log.Error("failed to close database", "error", err)
			}
			log.Info("database connection closed")
		}()
		log.Info("connected to PostgreSQL")

		if err := database.CreateTables(ctx, db); err != nil {
			return err
		}
		deps.Posts = repository.NewPostRepository(db)
		deps.Users = repository.NewUserRepository(db)
	} else {
		log.Warn("DATABASE_URL is not set, serving in-memory todos only")
	}

	if cfg.MQTTURL != "" {
		publisher, err := events.NewMQTTPublisher(cfg.MQTTURL, mqttClientID(), log)
		if err != nil {
			return err
		}
		defer publisher.Close()
		deps.Events = publisher
		log.Info("publishing change events to MQTT")
	}

	app := NewFiberApp(cfg, handlers.New(deps), log)

	errCh := make(chan error, 1)
	go func() {
		// Lắng nghe trên địa chỉ chỉ định
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		log.Info("shutting down server")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}

// NewFiberApp tạo ứng dụng Fiber với middleware và route
func NewFiberApp(cfg *config.Config, h *handlers.Handler, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "go-crud",
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origin,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app, h)
	config.AddSwaggerRoutes(app)

	return app
}

// Migrate chỉ tạo bảng rồi thoát
func Migrate(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.CreateTables(ctx, db); err != nil {
		return err
	}
	log.Info("tables created or already exist")
	return nil
}

func mqttClientID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "local"
	}
	return fmt.Sprintf("go-crud-%s-%d", host, os.Getpid())
}
