package main

import (
	"context"
	"errors"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"weather_app/internal/app/cli"
	"weather_app/internal/app/di"
	adminusecase "weather_app/internal/feature/admin/usecase"
	authadapters "weather_app/internal/feature/auth/adapters"
	authusecase "weather_app/internal/feature/auth/usecase"
	historyadapters "weather_app/internal/feature/history/adapters"
	historyusecase "weather_app/internal/feature/history/usecase"
	weatherusecase "weather_app/internal/feature/weather/usecase"
	platformdb "weather_app/internal/platform/db"
	platformredis "weather_app/internal/platform/redis"
)

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis（任意。未設定でもキャッシュなしで動作する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		if !errors.Is(err, platformredis.ErrNotConfigured) {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		}
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserSQLite(db)
	historyRepo := historyadapters.NewHistorySQLite(db)
	weatherRepo := di.NewWeatherRepository(rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, di.NewPasswordHasher())
	historyUC := historyusecase.NewHistoryUsecase(historyRepo)
	weatherUC := weatherusecase.NewWeatherUsecase(weatherRepo, historyUC)
	adminUC := adminusecase.NewAdminUsecase(adminusecase.LoadConfig(), historyUC)

	// 設定チェック（開発中の注意喚起）
	if os.Getenv("ADMIN_SECRET") == "" {
		log.Println("[WARN] ADMIN_SECRET is not set. The admin report will be inaccessible.")
	}
	if os.Getenv("OPENWEATHER_API_KEY") == "" {
		log.Println("[WARN] OPENWEATHER_API_KEY is not set. Weather lookups will fail.")
	}

	app := cli.NewApp(authUC, weatherUC, historyUC, adminUC, os.Stdin, os.Stdout)
	app.Run(context.Background())
}
