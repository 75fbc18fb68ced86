// Package usecase は売上データ操作のビジネスロジックを実装します。
package usecase

import (
	"sort"
	"strings"

	"pharma_backend/internal/feature/sales/domain/entity"
)

const (
	// DefaultDays は売上一覧のデフォルト取得日数です。
	DefaultDays = 30
	// MetricsWindowDays はメトリクス集計の対象期間（日数）です。
	MetricsWindowDays = 30
	// TrendsWindowDays はトレンド集計の対象期間（日数）です。
	TrendsWindowDays = 60
	// TopDrugCount はメトリクスに含める上位品目数です。
	TopDrugCount = 5
)

// SaleSource は売上行の供給元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SaleSource interface {
	// Generate は新しい売上系列を生成します。行順は新しい日付から古い日付へ、
	// 同一日内はカタログ順です。
	Generate() []entity.Sale
}

// salesUsecase は売上データ操作のユースケースを定義します。
type salesUsecase struct {
	source SaleSource
}

// NewSalesUsecase はsalesUsecaseの新しいインスタンスを生成します。
func NewSalesUsecase(source SaleSource) *salesUsecase {
	return &salesUsecase{source: source}
}

// List は直近days日分の売上行を返します。drugが指定された場合、
// 品目名で大文字小文字を無視してフィルタします。
func (su *salesUsecase) List(days int, drug string) []entity.Sale {
	if days <= 0 {
		days = DefaultDays
	}

	sales := recentRows(su.source.Generate(), days)
	if drug == "" {
		return sales
	}

	filtered := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if strings.EqualFold(s.DrugName, drug) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Metrics は直近30日間の売上を集計します。
// 上位品目の同率は先出順で安定的に解決され、カテゴリは初出順に並びます。
func (su *salesUsecase) Metrics() *entity.Metrics {
	recent := recentRows(su.source.Generate(), MetricsWindowDays)

	var (
		totalRevenue float64
		totalUnits   int
		drugOrder    []string
		catOrder     []string
	)
	drugRevenue := map[string]float64{}
	drugUnits := map[string]int{}
	catRevenue := map[string]float64{}
	catUnits := map[string]int{}

	for _, s := range recent {
		totalRevenue += s.Revenue
		totalUnits += s.UnitsSold

		if _, ok := drugRevenue[s.DrugName]; !ok {
			drugOrder = append(drugOrder, s.DrugName)
		}
		drugRevenue[s.DrugName] += s.Revenue
		drugUnits[s.DrugName] += s.UnitsSold

		if _, ok := catRevenue[s.Category]; !ok {
			catOrder = append(catOrder, s.Category)
		}
		catRevenue[s.Category] += s.Revenue
		catUnits[s.Category] += s.UnitsSold
	}

	// 収益降順でソート。SliceStableなので同率は先出順を保つ
	ranked := append([]string(nil), drugOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return drugRevenue[ranked[i]] > drugRevenue[ranked[j]]
	})
	if len(ranked) > TopDrugCount {
		ranked = ranked[:TopDrugCount]
	}

	top := make([]entity.RankedStat, 0, len(ranked))
	for _, name := range ranked {
		top = append(top, entity.RankedStat{
			Name:    name,
			Revenue: entity.RoundCurrency(drugRevenue[name]),
			Units:   drugUnits[name],
		})
	}

	categories := make([]entity.RankedStat, 0, len(catOrder))
	for _, name := range catOrder {
		categories = append(categories, entity.RankedStat{
			Name:    name,
			Revenue: entity.RoundCurrency(catRevenue[name]),
			Units:   catUnits[name],
		})
	}

	return &entity.Metrics{
		TotalRevenue:   entity.RoundCurrency(totalRevenue),
		TotalUnits:     totalUnits,
		AvgDailyDemand: entity.RoundCurrency(float64(totalUnits) / MetricsWindowDays),
		TopDrugs:       top,
		Categories:     categories,
	}
}

// Trends は直近60日間の売上を日付ごとに集計します。
// drugが指定された場合、品目名で大文字小文字を無視してフィルタします。
func (su *salesUsecase) Trends(drug string) *entity.Trend {
	recent := recentRows(su.source.Generate(), TrendsWindowDays)

	units := map[string]int{}
	revenue := map[string]float64{}
	for _, s := range recent {
		if drug != "" && !strings.EqualFold(s.DrugName, drug) {
			continue
		}
		units[s.Date] += s.UnitsSold
		revenue[s.Date] += s.Revenue
	}

	// YYYY-MM-DD形式のため辞書順ソートで日付昇順になる
	dates := make([]string, 0, len(units))
	for d := range units {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	trend := &entity.Trend{
		Dates:   dates,
		Units:   make([]int, 0, len(dates)),
		Revenue: make([]float64, 0, len(dates)),
	}
	for _, d := range dates {
		trend.Units = append(trend.Units, units[d])
		trend.Revenue = append(trend.Revenue, entity.RoundCurrency(revenue[d]))
	}
	return trend
}

// recentRows は生成順（新しい日付が先頭）を利用して先頭n日分の行を切り出します。
func recentRows(sales []entity.Sale, days int) []entity.Sale {
	n := days * len(entity.Catalog)
	if n > len(sales) {
		n = len(sales)
	}
	return sales[:n]
}
