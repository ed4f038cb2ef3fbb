package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	rosterpb "github.com/Leganyst/flight-roster/internal/api/roster/v1"
	"github.com/Leganyst/flight-roster/internal/config"
	"github.com/Leganyst/flight-roster/internal/db"
	"github.com/Leganyst/flight-roster/internal/logging"
	"github.com/Leganyst/flight-roster/internal/model"
	"github.com/Leganyst/flight-roster/internal/queue"
	"github.com/Leganyst/flight-roster/internal/repository"
	"github.com/Leganyst/flight-roster/internal/roster"
	"github.com/Leganyst/flight-roster/internal/service"
)

func main() {
	// 1. Конфиг из .env, окружения и CONFIG_FILE.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Блокировка генерации: Redis для нескольких инстансов, иначе в процессе.
	var locker roster.Locker
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("redis ping %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		locker = roster.NewRedisLocker(rdb, cfg.LockTTL, logger)
		logger.Info("using redis roster lock", "addr", cfg.Redis.Addr)
	}

	// 5. События о новых ростерах.
	var publisher roster.Publisher
	if cfg.AMQPURL != "" {
		publisher = queue.NewAMQPPublisher(cfg.AMQPURL, logger)
		logger.Info("publishing roster events", "queue", queue.RosterGeneratedQueue)
	}

	// 6. Генератор и gRPC-сервис.
	gen := roster.NewGenerator(gormDB, locker, publisher, logger)
	gen.DefaultBackend = cfg.DefaultBackend

	rosterSvc := service.NewRosterService(gen, repository.NewGormUserRepository(gormDB), logger)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(service.LoggingInterceptor(logger)))
	rosterpb.RegisterRosterServiceServer(grpcServer, rosterSvc)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
	}

	logger.Info("roster gRPC server listening", "addr", cfg.GRPCAddr, "db_driver", cfg.DB.Driver)

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down gRPC server")
	grpcServer.GracefulStop()
}
