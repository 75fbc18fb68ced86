package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	cataloghandler "pharma_backend/internal/feature/catalog/transport/handler"
	forecasthandler "pharma_backend/internal/feature/forecast/transport/handler"
	insighthandler "pharma_backend/internal/feature/insights/transport/handler"
	saleshandler "pharma_backend/internal/feature/sales/transport/handler"

	authhandler "pharma_backend/internal/feature/auth/transport/handler"
	"pharma_backend/internal/platform/config"
	platformhandler "pharma_backend/internal/platform/http/handler"
	jwtmw "pharma_backend/internal/platform/jwt"
)

// NewRouter は全エンドポイントを配線したgin.Engineを生成します。
// 登録・ログイン・ヘルスチェック以外のルートは認可ミドルウェアで保護されます。
func NewRouter(cfg config.Config, tokens jwtmw.Verifier, users jwtmw.UserFinder,
	authH *authhandler.AuthHandler, salesH *saleshandler.SalesHandler,
	predictH *forecasthandler.PredictHandler, insightH *insighthandler.InsightHandler,
	catalogH *cataloghandler.CatalogHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加
	r.Use(cors.New(corsConfig(cfg)))

	apiGroup := r.Group("/api")

	// 認証不要
	// 導通確認用
	apiGroup.GET("/", platformhandler.Root)
	apiGroup.GET("/health", platformhandler.Health(cfg.MLConfigured()))
	// 新規ユーザー登録
	apiGroup.POST("/auth/register", authH.Register)
	// ログイン（トークン発行）
	apiGroup.POST("/auth/login", authH.Login)

	// 認証必須のルート
	// apiGroup.Group("/") でルートグループを作成
	auth := apiGroup.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにBearerトークンが必要になる
	auth.Use(jwtmw.AuthRequired(tokens, users))
	{
		auth.GET("/auth/me", authH.Me)
		auth.GET("/sales", salesH.List)
		auth.GET("/sales/metrics", salesH.Metrics)
		auth.GET("/sales/trends", salesH.Trends)
		auth.GET("/predict", predictH.Predict)
		auth.GET("/insights", insightH.List)
		auth.GET("/drugs", catalogH.List)
	}

	return r
}

// corsConfig は設定されたオリジンからCORS設定を構築します。
// gin-contrib/corsはワイルドカードと認証情報の併用を許可しないため、
// "*"のみが設定された場合はAllowAllOriginsを使用します。
func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")

	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.CORSOrigins
	c.AllowCredentials = true
	return c
}
