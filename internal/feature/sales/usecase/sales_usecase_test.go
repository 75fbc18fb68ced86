package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"pharma_backend/internal/feature/sales/domain/entity"
)

// stubSaleSource はテスト用の固定系列を返すSaleSource実装です。
type stubSaleSource struct {
	sales []entity.Sale
}

func (s *stubSaleSource) Generate() []entity.Sale {
	return s.sales
}

// makeSales はdays日分×カタログ全品目の合成系列を生成します。
// ジェネレーターと同じ並び（新しい日付が先頭、同一日内はカタログ順）で、
// 値は行ごとに決定的です。
func makeSales(days int, units func(daysAgo, drugIdx int) int, revenue func(daysAgo, drugIdx int) float64) []entity.Sale {
	base := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	sales := make([]entity.Sale, 0, days*len(entity.Catalog))
	for daysAgo := 0; daysAgo < days; daysAgo++ {
		date := base.AddDate(0, 0, -daysAgo).Format("2006-01-02")
		for i, drug := range entity.Catalog {
			sales = append(sales, entity.Sale{
				ID:        fmt.Sprintf("row-%d-%d", daysAgo, i),
				DrugName:  drug.Name,
				Category:  drug.Category,
				UnitsSold: units(daysAgo, i),
				Revenue:   revenue(daysAgo, i),
				Date:      date,
			})
		}
	}
	return sales
}

func flatSales(days int) []entity.Sale {
	return makeSales(days,
		func(daysAgo, drugIdx int) int { return 10 },
		func(daysAgo, drugIdx int) float64 { return 100.0 },
	)
}

func TestSalesUsecase_List(t *testing.T) {
	t.Parallel()

	uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(180)})

	tests := []struct {
		name     string
		days     int
		drug     string
		wantRows int
	}{
		{"default window", 30, "", 30 * len(entity.Catalog)},
		{"seven days", 7, "", 7 * len(entity.Catalog)},
		{"zero falls back to default", 0, "", DefaultDays * len(entity.Catalog)},
		{"negative falls back to default", -3, "", DefaultDays * len(entity.Catalog)},
		{"window capped at history length", 400, "", 180 * len(entity.Catalog)},
		{"drug filter", 30, "Paracetamol", 30},
		{"drug filter is case insensitive", 30, "paracetamol", 30},
		{"unknown drug yields empty", 30, "Unobtainium", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := uc.List(tt.days, tt.drug)
			if len(got) != tt.wantRows {
				t.Errorf("expected %d rows, got %d", tt.wantRows, len(got))
			}
			if tt.drug != "" {
				for _, s := range got {
					if !strings.EqualFold(s.DrugName, tt.drug) {
						t.Errorf("unexpected drug %q in filtered result", s.DrugName)
					}
				}
			}
		})
	}
}

func TestSalesUsecase_Metrics(t *testing.T) {
	t.Parallel()

	t.Run("totals and average over the 30 day window", func(t *testing.T) {
		t.Parallel()

		// 60日分あるが集計は直近30日に限定される
		uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(60)})
		m := uc.Metrics()

		wantUnits := 10 * len(entity.Catalog) * MetricsWindowDays
		if m.TotalUnits != wantUnits {
			t.Errorf("expected total units %d, got %d", wantUnits, m.TotalUnits)
		}
		wantRevenue := 100.0 * float64(len(entity.Catalog)) * MetricsWindowDays
		if m.TotalRevenue != wantRevenue {
			t.Errorf("expected total revenue %f, got %f", wantRevenue, m.TotalRevenue)
		}
		wantAvg := entity.RoundCurrency(float64(wantUnits) / MetricsWindowDays)
		if m.AvgDailyDemand != wantAvg {
			t.Errorf("expected avg daily demand %f, got %f", wantAvg, m.AvgDailyDemand)
		}
	})

	t.Run("top drugs sorted by revenue descending", func(t *testing.T) {
		t.Parallel()

		// カタログの添字に比例した収益を与える。最後の品目が最大
		sales := makeSales(30,
			func(daysAgo, drugIdx int) int { return drugIdx + 1 },
			func(daysAgo, drugIdx int) float64 { return float64(drugIdx+1) * 10 },
		)
		uc := NewSalesUsecase(&stubSaleSource{sales: sales})
		m := uc.Metrics()

		if len(m.TopDrugs) != TopDrugCount {
			t.Fatalf("expected %d top drugs, got %d", TopDrugCount, len(m.TopDrugs))
		}
		for i := 1; i < len(m.TopDrugs); i++ {
			if m.TopDrugs[i].Revenue > m.TopDrugs[i-1].Revenue {
				t.Errorf("top drugs not sorted: %f before %f", m.TopDrugs[i-1].Revenue, m.TopDrugs[i].Revenue)
			}
		}
		// 最大収益はカタログ末尾の品目
		last := entity.Catalog[len(entity.Catalog)-1]
		if m.TopDrugs[0].Name != last.Name {
			t.Errorf("expected top drug %s, got %s", last.Name, m.TopDrugs[0].Name)
		}
	})

	t.Run("revenue ties keep first-seen order", func(t *testing.T) {
		t.Parallel()

		uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(30)})
		m := uc.Metrics()

		// 全品目が同率なのでカタログ順が保たれる
		for i, stat := range m.TopDrugs {
			if stat.Name != entity.Catalog[i].Name {
				t.Errorf("position %d: expected %s, got %s", i, entity.Catalog[i].Name, stat.Name)
			}
		}
	})

	t.Run("categories appear in first-seen order and sum to totals", func(t *testing.T) {
		t.Parallel()

		uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(30)})
		m := uc.Metrics()

		var wantOrder []string
		seen := map[string]bool{}
		for _, d := range entity.Catalog {
			if !seen[d.Category] {
				seen[d.Category] = true
				wantOrder = append(wantOrder, d.Category)
			}
		}
		if len(m.Categories) != len(wantOrder) {
			t.Fatalf("expected %d categories, got %d", len(wantOrder), len(m.Categories))
		}
		var catRevenue float64
		var catUnits int
		for i, stat := range m.Categories {
			if stat.Name != wantOrder[i] {
				t.Errorf("position %d: expected category %s, got %s", i, wantOrder[i], stat.Name)
			}
			catRevenue += stat.Revenue
			catUnits += stat.Units
		}
		if math.Abs(catRevenue-m.TotalRevenue) > 1e-6 {
			t.Errorf("category revenue %f does not sum to total %f", catRevenue, m.TotalRevenue)
		}
		if catUnits != m.TotalUnits {
			t.Errorf("category units %d do not sum to total %d", catUnits, m.TotalUnits)
		}
	})
}

func TestSalesUsecase_Trends(t *testing.T) {
	t.Parallel()

	t.Run("daily aggregation over the 60 day window", func(t *testing.T) {
		t.Parallel()

		uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(180)})
		trend := uc.Trends("")

		if len(trend.Dates) != TrendsWindowDays {
			t.Fatalf("expected %d dates, got %d", TrendsWindowDays, len(trend.Dates))
		}
		if len(trend.Units) != len(trend.Dates) || len(trend.Revenue) != len(trend.Dates) {
			t.Fatalf("parallel arrays out of sync: %d dates, %d units, %d revenue",
				len(trend.Dates), len(trend.Units), len(trend.Revenue))
		}
		if !sort.StringsAreSorted(trend.Dates) {
			t.Error("expected dates in ascending order")
		}
		for i := 1; i < len(trend.Dates); i++ {
			if trend.Dates[i] == trend.Dates[i-1] {
				t.Errorf("duplicate date %s", trend.Dates[i])
			}
		}
		for i := range trend.Dates {
			if trend.Units[i] != 10*len(entity.Catalog) {
				t.Errorf("date %s: expected %d units, got %d", trend.Dates[i], 10*len(entity.Catalog), trend.Units[i])
			}
			if trend.Revenue[i] != 100.0*float64(len(entity.Catalog)) {
				t.Errorf("date %s: expected revenue %f, got %f", trend.Dates[i], 100.0*float64(len(entity.Catalog)), trend.Revenue[i])
			}
		}
	})

	t.Run("drug filter", func(t *testing.T) {
		t.Parallel()

		uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(180)})
		trend := uc.Trends("ibuprofen")

		if len(trend.Dates) != TrendsWindowDays {
			t.Fatalf("expected %d dates, got %d", TrendsWindowDays, len(trend.Dates))
		}
		for i := range trend.Dates {
			if trend.Units[i] != 10 {
				t.Errorf("date %s: expected 10 units for a single drug, got %d", trend.Dates[i], trend.Units[i])
			}
		}
	})

	t.Run("unknown drug yields empty arrays", func(t *testing.T) {
		t.Parallel()

		uc := NewSalesUsecase(&stubSaleSource{sales: flatSales(180)})
		trend := uc.Trends("Unobtainium")

		if len(trend.Dates) != 0 || len(trend.Units) != 0 || len(trend.Revenue) != 0 {
			t.Errorf("expected empty trend, got %d dates", len(trend.Dates))
		}
	})

	t.Run("revenue is rounded to cents", func(t *testing.T) {
		t.Parallel()

		sales := makeSales(60,
			func(daysAgo, drugIdx int) int { return 1 },
			func(daysAgo, drugIdx int) float64 { return 0.111 },
		)
		uc := NewSalesUsecase(&stubSaleSource{sales: sales})
		trend := uc.Trends("")

		for i, r := range trend.Revenue {
			if math.Abs(r*100-math.Round(r*100)) > 1e-9 {
				t.Errorf("date %s: revenue %f not rounded to cents", trend.Dates[i], r)
			}
		}
	})
}
