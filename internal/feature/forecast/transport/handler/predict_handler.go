// Package handler はforecastフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharma_backend/internal/api"
	"pharma_backend/internal/feature/forecast/domain/entity"
	"pharma_backend/internal/feature/forecast/usecase"
)

// ForecastUsecase はローカル予測のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ForecastUsecase interface {
	Forecast(drug string, horizon int) *entity.Forecast
}

// PredictHandler は需要予測のHTTPリクエストを処理します。
// 外部予測APIが設定されている場合はそのレスポンスを中継し、
// 未設定の場合はローカルの移動平均予測を返します。
type PredictHandler struct {
	uc    ForecastUsecase
	relay usecase.MLRelay // nilの場合、中継は無効
}

// NewPredictHandler はPredictHandlerの新しいインスタンスを生成します。
// relayにnilを渡すと常にローカル予測が使われます。
func NewPredictHandler(uc ForecastUsecase, relay usecase.MLRelay) *PredictHandler {
	return &PredictHandler{uc: uc, relay: relay}
}

// Predict は需要予測を返します。
//
// エンドポイント例:
// GET /api/predict?drug=Paracetamol&days=30
//
// 中継失敗時は例外をAPI境界に伝播させず、HTTP 200で明示的なエラーペイロードを返します。
// このワイヤ形状にはクライアントが依存しているため変更してはいけません。
func (h *PredictHandler) Predict(c *gin.Context) {
	drug := c.Query("drug")
	daysStr := c.DefaultQuery("days", "30")
	days, _ := strconv.Atoi(daysStr)
	if days <= 0 || days > usecase.MaxHorizonDays {
		days = usecase.DefaultHorizonDays
	}

	if h.relay != nil {
		raw, err := h.relay.Fetch(c.Request.Context(), drug, days)
		if err != nil {
			slog.Warn("forecast relay failed", "error", err, "drug", drug)
			c.JSON(http.StatusOK, gin.H{
				"error":  "Failed to fetch from external ML API",
				"status": "error",
			})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
		return
	}

	f := h.uc.Forecast(drug, days)

	c.JSON(http.StatusOK, api.ForecastResponse{
		HistoricalDates:  f.HistoricalDates,
		HistoricalValues: f.HistoricalValues,
		ForecastDates:    f.ForecastDates,
		Predicted:        f.Predicted,
		Drug:             f.Drug,
		Status:           "mock",
		Model:            "SARIMA (Mock)",
		ConfidenceInterval: api.ConfidenceInterval{
			Lower: f.Lower,
			Upper: f.Upper,
		},
	})
}
