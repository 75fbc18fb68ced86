// Package handler はsalesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharma_backend/internal/api"
	"pharma_backend/internal/feature/sales/domain/entity"
)

// SalesUsecase は売上データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SalesUsecase interface {
	List(days int, drug string) []entity.Sale
	Metrics() *entity.Metrics
	Trends(drug string) *entity.Trend
}

// SalesHandler は売上データのHTTPリクエストを処理します。
type SalesHandler struct {
	uc SalesUsecase
}

// NewSalesHandler は指定されたusecaseでSalesHandlerの新しいインスタンスを生成します。
func NewSalesHandler(uc SalesUsecase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// List は生成された売上行を返します。
//
// エンドポイント例:
// GET /api/sales?days=30&drug=Paracetamol
func (h *SalesHandler) List(c *gin.Context) {
	daysStr := c.DefaultQuery("days", "30")
	// 文字列を整数に変換（不正値はusecase側でデフォルトに丸める）
	days, _ := strconv.Atoi(daysStr)
	drug := c.Query("drug")

	sales := h.uc.List(days, drug)

	out := make([]api.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, api.SaleResponse{
			ID:        s.ID,
			DrugName:  s.DrugName,
			Category:  s.Category,
			UnitsSold: s.UnitsSold,
			Revenue:   s.Revenue,
			Date:      s.Date,
		})
	}

	c.JSON(http.StatusOK, api.SalesResponse{Sales: out, Total: len(out)})
}

// Metrics は直近30日間の売上集計を返します。
//
// エンドポイント例:
// GET /api/sales/metrics
func (h *SalesHandler) Metrics(c *gin.Context) {
	m := h.uc.Metrics()

	c.JSON(http.StatusOK, api.MetricsResponse{
		TotalRevenue:   m.TotalRevenue,
		TotalUnits:     m.TotalUnits,
		AvgDailyDemand: m.AvgDailyDemand,
		TopDrugs:       toRankedStats(m.TopDrugs),
		Categories:     toRankedStats(m.Categories),
		Period:         "Last 30 days",
	})
}

// Trends はチャート描画用の日次売上推移を返します。
//
// エンドポイント例:
// GET /api/sales/trends?drug=Ibuprofen
func (h *SalesHandler) Trends(c *gin.Context) {
	t := h.uc.Trends(c.Query("drug"))

	c.JSON(http.StatusOK, api.TrendsResponse{
		Dates:   t.Dates,
		Units:   t.Units,
		Revenue: t.Revenue,
	})
}

func toRankedStats(stats []entity.RankedStat) []api.RankedStat {
	out := make([]api.RankedStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, api.RankedStat{Name: s.Name, Revenue: s.Revenue, Units: s.Units})
	}
	return out
}
