// Package usecase は需要予測のビジネスロジックを実装します。
package usecase

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"pharma_backend/internal/feature/forecast/domain/entity"
	salesentity "pharma_backend/internal/feature/sales/domain/entity"
)

const (
	// HistoryWindowDays は予測の入力となる履歴期間（日数）です。
	HistoryWindowDays = 60
	// ActualsReturned はレスポンスに含める直近実績の日数です。
	ActualsReturned = 30
	// DefaultHorizonDays はデフォルトの予測日数です。
	DefaultHorizonDays = 30
	// MaxHorizonDays は予測日数の上限です。
	MaxHorizonDays = 365
	// movingAverageWindow は移動平均とトレンド算出に使う末尾日数です。
	movingAverageWindow = 7
)

// SaleSource は売上行の供給元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SaleSource interface {
	Generate() []salesentity.Sale
}

// MLRelay は外部予測APIへの中継を抽象化します。
// 実装はadapters/mlapiが提供し、platform/cacheがデコレートします。
type MLRelay interface {
	// Fetch は外部APIの予測レスポンスを生のJSONとして返します。
	Fetch(ctx context.Context, drug string, days int) ([]byte, error)
}

// forecastUsecase は移動平均ベースのローカル予測を実装します。
type forecastUsecase struct {
	source SaleSource
	seed   func() int64
	now    func() time.Time
}

// NewForecastUsecase は本番用のforecastUsecaseを生成します。
// 予測のジッターは呼び出しごとに新しい乱数で描画されます。
func NewForecastUsecase(source SaleSource) *forecastUsecase {
	return &forecastUsecase{
		source: source,
		seed:   func() int64 { return time.Now().UnixNano() },
		now:    time.Now,
	}
}

// NewSeededForecastUsecase は固定シードと時計を注入したforecastUsecaseを生成します。
// テストでの再現性のために使用します。
func NewSeededForecastUsecase(source SaleSource, seed int64, now func() time.Time) *forecastUsecase {
	return &forecastUsecase{
		source: source,
		seed:   func() int64 { return seed },
		now:    now,
	}
}

// Forecast は直近60日間の実績から単純移動平均＋トレンドで需要を予測します。
// 実績が8日分未満の場合は全期間平均（実績が無い場合は100）を使い、トレンドは0とします。
func (fu *forecastUsecase) Forecast(drug string, horizon int) *entity.Forecast {
	if horizon <= 0 || horizon > MaxHorizonDays {
		horizon = DefaultHorizonDays
	}

	recent := recentRows(fu.source.Generate(), HistoryWindowDays)

	// 日付ごとの販売数を集計
	daily := map[string]int{}
	for _, s := range recent {
		if drug != "" && !strings.EqualFold(s.DrugName, drug) {
			continue
		}
		daily[s.Date] += s.UnitsSold
	}

	// YYYY-MM-DD形式のため辞書順ソートで日付昇順になる
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	actuals := make([]int, 0, len(dates))
	for _, d := range dates {
		actuals = append(actuals, daily[d])
	}

	// 移動平均とトレンドの算出
	var avg, trend float64
	if len(actuals) > movingAverageWindow {
		sum := 0
		for _, v := range actuals[len(actuals)-movingAverageWindow:] {
			sum += v
		}
		avg = float64(sum) / movingAverageWindow
		trend = float64(actuals[len(actuals)-1]-actuals[len(actuals)-movingAverageWindow]) / movingAverageWindow
	} else if len(actuals) > 0 {
		sum := 0
		for _, v := range actuals {
			sum += v
		}
		avg = float64(sum) / float64(len(actuals))
	} else {
		avg = 100
	}

	// 最終実績日から先の日付を予測対象にする
	lastDate := fu.now().UTC()
	if len(dates) > 0 {
		if t, err := time.Parse("2006-01-02", dates[len(dates)-1]); err == nil {
			lastDate = t
		}
	}

	rng := rand.New(rand.NewSource(fu.seed()))
	f := &entity.Forecast{
		ForecastDates: make([]string, 0, horizon),
		Predicted:     make([]int, 0, horizon),
		Lower:         make([]int, 0, horizon),
		Upper:         make([]int, 0, horizon),
		Drug:          drug,
	}
	if f.Drug == "" {
		f.Drug = "All Drugs"
	}

	for i := 1; i <= horizon; i++ {
		f.ForecastDates = append(f.ForecastDates, lastDate.AddDate(0, 0, i).Format("2006-01-02"))

		// 予測値に±10%のジッターを加える
		jitter := -avg*0.1 + rng.Float64()*(avg*0.2)
		pred := int(avg + trend*float64(i) + jitter)
		if pred < 0 {
			pred = 0
		}
		f.Predicted = append(f.Predicted, pred)

		lower := int(float64(pred) * 0.85)
		if lower < 0 {
			lower = 0
		}
		f.Lower = append(f.Lower, lower)
		f.Upper = append(f.Upper, int(float64(pred)*1.15))
	}

	// 直近30日分の実績を添付
	start := 0
	if len(dates) > ActualsReturned {
		start = len(dates) - ActualsReturned
	}
	f.HistoricalDates = dates[start:]
	f.HistoricalValues = actuals[start:]

	return f
}

// recentRows は生成順（新しい日付が先頭）を利用して先頭n日分の行を切り出します。
func recentRows(sales []salesentity.Sale, days int) []salesentity.Sale {
	n := days * len(salesentity.Catalog)
	if n > len(sales) {
		n = len(sales)
	}
	return sales[:n]
}
