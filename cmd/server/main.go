package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"pharma_backend/internal/app/router"
	authadapters "pharma_backend/internal/feature/auth/adapters"
	authhandler "pharma_backend/internal/feature/auth/transport/handler"
	authusecase "pharma_backend/internal/feature/auth/usecase"
	catalogusecase "pharma_backend/internal/feature/catalog/usecase"

	cataloghandler "pharma_backend/internal/feature/catalog/transport/handler"
	"pharma_backend/internal/feature/forecast/adapters/mlapi"
	forecasthandler "pharma_backend/internal/feature/forecast/transport/handler"
	forecastusecase "pharma_backend/internal/feature/forecast/usecase"
	insightadapters "pharma_backend/internal/feature/insights/adapters"
	insighthandler "pharma_backend/internal/feature/insights/transport/handler"
	insightusecase "pharma_backend/internal/feature/insights/usecase"
	salesadapters "pharma_backend/internal/feature/sales/adapters"
	saleshandler "pharma_backend/internal/feature/sales/transport/handler"
	salesusecase "pharma_backend/internal/feature/sales/usecase"
	"pharma_backend/internal/platform/cache"
	"pharma_backend/internal/platform/config"
	infradb "pharma_backend/internal/platform/db"
	platformhttp "pharma_backend/internal/platform/http"
	jwtmw "pharma_backend/internal/platform/jwt"
	infraredis "pharma_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis（任意。未設定の場合はキャッシュなしで動作）
	var rdb *redisv9.Client
	if cfg.RedisHost != "" {
		if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	saleGen := salesadapters.NewSaleGenerator()
	insightSrc := insightadapters.NewStaticInsights()

	// トークンサービス
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.TokenTTL)

	// 外部予測API（設定されている場合のみ中継を有効化し、Redisキャッシュでラップ）
	var relay forecastusecase.MLRelay
	if cfg.MLConfigured() {
		client := platformhttp.NewHTTPClient(cfg.MLAPITimeout)
		relay = mlapi.NewRelay(mlapi.Config{BaseURL: cfg.MLAPIURL, Timeout: cfg.MLAPITimeout}, client)
		if rdb != nil {
			relay = cache.NewCachingForecastRelay(rdb, 5*time.Minute, relay, "forecast")
		}
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	salesUC := salesusecase.NewSalesUsecase(saleGen)
	forecastUC := forecastusecase.NewForecastUsecase(saleGen)
	insightUC := insightusecase.NewInsightUsecase(insightSrc)
	catalogUC := catalogusecase.NewCatalogUsecase()

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	salesH := saleshandler.NewSalesHandler(salesUC)
	predictH := forecasthandler.NewPredictHandler(forecastUC, relay)
	insightH := insighthandler.NewInsightHandler(insightUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	// ルータ生成
	r := router.NewRouter(cfg, tokens, userRepo, authH, salesH, predictH, insightH, catalogH)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
