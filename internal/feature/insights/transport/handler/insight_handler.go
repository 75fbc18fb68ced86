// Package handler はinsightsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharma_backend/internal/api"
	"pharma_backend/internal/feature/insights/domain/entity"
)

// InsightUsecase はインサイト一覧のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InsightUsecase interface {
	List(category, priority string) []entity.Insight
}

// InsightHandler はインサイトのHTTPリクエストを処理します。
type InsightHandler struct {
	uc InsightUsecase
}

// NewInsightHandler は指定されたusecaseでInsightHandlerの新しいインスタンスを生成します。
func NewInsightHandler(uc InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// List はフィルタ済み・優先度順のインサイト一覧を返します。
//
// エンドポイント例:
// GET /api/insights?category=Inventory&priority=critical
func (h *InsightHandler) List(c *gin.Context) {
	insights := h.uc.List(c.Query("category"), c.Query("priority"))

	out := make([]api.InsightResponse, 0, len(insights))
	for _, in := range insights {
		out = append(out, api.InsightResponse{
			ID:          in.ID,
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Priority:    in.Priority,
			DrugName:    in.DrugName,
		})
	}

	c.JSON(http.StatusOK, api.InsightsResponse{Insights: out, Total: len(out)})
}
