// Package adapters はsalesフィーチャーのデータソース実装を提供します。
package adapters

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"pharma_backend/internal/feature/sales/domain/entity"
	"pharma_backend/internal/feature/sales/usecase"
)

// HistoryDays は生成される売上履歴の日数です（当日を含む180日）。
const HistoryDays = 180

// saleGenerator はカタログ×180日のモック売上データを生成するSaleSource実装です。
// 構造は決定的（行数・日付・並び順）ですが、値は呼び出しごとに新しい乱数で描画されます。
// 同じ日のデータでも2回のリクエストで一致しないのは仕様です。
type saleGenerator struct {
	seed func() int64
	now  func() time.Time
}

// saleGeneratorがSaleSourceを実装していることをコンパイル時に検証します。
var _ usecase.SaleSource = (*saleGenerator)(nil)

// NewSaleGenerator は本番用のジェネレーターを生成します。
// 呼び出しごとに現在時刻からシードを取るため、出力は再現されません。
func NewSaleGenerator() *saleGenerator {
	return &saleGenerator{
		seed: func() int64 { return time.Now().UnixNano() },
		now:  time.Now,
	}
}

// NewSeededSaleGenerator は固定シードと時計を注入したジェネレーターを生成します。
// テストでの再現性のために使用します。
func NewSeededSaleGenerator(seed int64, now func() time.Time) *saleGenerator {
	return &saleGenerator{
		seed: func() int64 { return seed },
		now:  now,
	}
}

// Generate は180日×カタログ全品目の売上行を生成します。
// 外側ループは当日から過去へ（新しい順）、内側ループはカタログ順です。
func (g *saleGenerator) Generate() []entity.Sale {
	rng := rand.New(rand.NewSource(g.seed()))
	base := g.now().UTC()

	sales := make([]entity.Sale, 0, HistoryDays*len(entity.Catalog))
	for daysAgo := 0; daysAgo < HistoryDays; daysAgo++ {
		date := base.AddDate(0, 0, -daysAgo)
		dateStr := date.Format("2006-01-02")

		// 平日は需要が高く、週末は低い
		dayFactor := 0.8
		if wd := date.Weekday(); wd >= time.Monday && wd <= time.Friday {
			dayFactor = 1.2
		}

		for _, drug := range entity.Catalog {
			baseUnits := 50 + rng.Intn(151) // [50,200]
			noise := 0.7 + rng.Float64()*0.6
			units := int(float64(baseUnits) * dayFactor * noise)

			priceNoise := 0.9 + rng.Float64()*0.2
			revenue := entity.RoundCurrency(float64(units) * drug.BasePrice * priceNoise)

			sales = append(sales, entity.Sale{
				ID:        uuid.NewString(),
				DrugName:  drug.Name,
				Category:  drug.Category,
				UnitsSold: units,
				Revenue:   revenue,
				Date:      dateStr,
			})
		}
	}
	return sales
}
