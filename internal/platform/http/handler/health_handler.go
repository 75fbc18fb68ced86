// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import "github.com/gin-gonic/gin"

// Root は /api/ のサービス情報エンドポイントを処理します。
func Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Pharma Insights API", "version": "1.0.0"})
}

// Health はサービスヘルスチェック用の /api/health エンドポイントを返します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(mlConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
		switch c.Request.Method {
		case "HEAD":
			c.Status(200)
		case "OPTIONS":
			c.Status(204)
		default:
			c.JSON(200, gin.H{"status": "healthy", "ml_api_configured": mlConfigured})
		}
	}
}
