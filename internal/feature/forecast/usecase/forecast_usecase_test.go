package usecase

import (
	"fmt"
	"testing"
	"time"

	salesentity "pharma_backend/internal/feature/sales/domain/entity"
)

// stubSaleSource はテスト用の固定系列を返すSaleSource実装です。
type stubSaleSource struct {
	sales []salesentity.Sale
}

func (s *stubSaleSource) Generate() []salesentity.Sale {
	return s.sales
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

// makeSales はdays日分×カタログ全品目の合成系列を生成します。
// 並びはジェネレーターと同じく新しい日付が先頭です。
func makeSales(days int, unitsPerRow int) []salesentity.Sale {
	sales := make([]salesentity.Sale, 0, days*len(salesentity.Catalog))
	for daysAgo := 0; daysAgo < days; daysAgo++ {
		date := fixedNow().AddDate(0, 0, -daysAgo).Format("2006-01-02")
		for i, drug := range salesentity.Catalog {
			sales = append(sales, salesentity.Sale{
				ID:        fmt.Sprintf("row-%d-%d", daysAgo, i),
				DrugName:  drug.Name,
				Category:  drug.Category,
				UnitsSold: unitsPerRow,
				Revenue:   float64(unitsPerRow) * drug.BasePrice,
				Date:      date,
			})
		}
	}
	return sales
}

// TestForecast_FlatSeries は定常系列で平均±ジッターの予測になることを検証します。
func TestForecast_FlatSeries(t *testing.T) {
	t.Parallel()

	// 全行10個 → 日次合計はカタログ件数×10で一定、トレンドは0
	source := &stubSaleSource{sales: makeSales(180, 10)}
	fu := NewSeededForecastUsecase(source, 42, fixedNow)

	f := fu.Forecast("", 30)

	dailyTotal := 10 * len(salesentity.Catalog)
	lowBound := int(float64(dailyTotal) * 0.9)
	highBound := int(float64(dailyTotal) * 1.1)

	if len(f.Predicted) != 30 {
		t.Fatalf("expected 30 predictions, got %d", len(f.Predicted))
	}
	for i, p := range f.Predicted {
		// 平均100・トレンド0なのでジッター幅±10%に収まる
		if p < lowBound-1 || p > highBound+1 {
			t.Errorf("prediction %d: %d outside jitter bounds [%d,%d]", i, p, lowBound, highBound)
		}
		wantLower := int(float64(p) * 0.85)
		wantUpper := int(float64(p) * 1.15)
		if f.Lower[i] != wantLower {
			t.Errorf("prediction %d: expected lower %d, got %d", i, wantLower, f.Lower[i])
		}
		if f.Upper[i] != wantUpper {
			t.Errorf("prediction %d: expected upper %d, got %d", i, wantUpper, f.Upper[i])
		}
	}
}

// TestForecast_HistoricalWindow は直近30日分の実績が昇順で添付されることを検証します。
func TestForecast_HistoricalWindow(t *testing.T) {
	t.Parallel()

	source := &stubSaleSource{sales: makeSales(180, 10)}
	fu := NewSeededForecastUsecase(source, 42, fixedNow)

	f := fu.Forecast("", 30)

	if len(f.HistoricalDates) != ActualsReturned {
		t.Fatalf("expected %d historical dates, got %d", ActualsReturned, len(f.HistoricalDates))
	}
	if len(f.HistoricalValues) != len(f.HistoricalDates) {
		t.Fatalf("parallel arrays out of sync: %d dates, %d values", len(f.HistoricalDates), len(f.HistoricalValues))
	}

	// 最終日は生成系列の当日
	wantLast := fixedNow().Format("2006-01-02")
	if f.HistoricalDates[len(f.HistoricalDates)-1] != wantLast {
		t.Errorf("expected last historical date %s, got %s", wantLast, f.HistoricalDates[len(f.HistoricalDates)-1])
	}
	for i := 1; i < len(f.HistoricalDates); i++ {
		if f.HistoricalDates[i] <= f.HistoricalDates[i-1] {
			t.Errorf("historical dates not strictly ascending at %d", i)
		}
	}
	for i, v := range f.HistoricalValues {
		if v != 10*len(salesentity.Catalog) {
			t.Errorf("historical value %d: expected %d, got %d", i, 10*len(salesentity.Catalog), v)
		}
	}
}

// TestForecast_DatesFollowLastActual は予測日が最終実績日の翌日から連続することを検証します。
func TestForecast_DatesFollowLastActual(t *testing.T) {
	t.Parallel()

	source := &stubSaleSource{sales: makeSales(180, 10)}
	fu := NewSeededForecastUsecase(source, 42, fixedNow)

	f := fu.Forecast("", 14)

	if len(f.ForecastDates) != 14 {
		t.Fatalf("expected 14 forecast dates, got %d", len(f.ForecastDates))
	}
	for i, d := range f.ForecastDates {
		want := fixedNow().AddDate(0, 0, i+1).Format("2006-01-02")
		if d != want {
			t.Errorf("forecast date %d: expected %s, got %s", i, want, d)
		}
	}
}

// TestForecast_HorizonBounds は不正なhorizonがデフォルトに丸められることを検証します。
func TestForecast_HorizonBounds(t *testing.T) {
	t.Parallel()

	source := &stubSaleSource{sales: makeSales(180, 10)}

	tests := []struct {
		name    string
		horizon int
		want    int
	}{
		{"zero uses default", 0, DefaultHorizonDays},
		{"negative uses default", -5, DefaultHorizonDays},
		{"above max uses default", MaxHorizonDays + 1, DefaultHorizonDays},
		{"max allowed", MaxHorizonDays, MaxHorizonDays},
		{"custom horizon", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fu := NewSeededForecastUsecase(source, 42, fixedNow)
			f := fu.Forecast("", tt.horizon)

			if len(f.Predicted) != tt.want {
				t.Errorf("expected %d predictions, got %d", tt.want, len(f.Predicted))
			}
			if len(f.ForecastDates) != tt.want || len(f.Lower) != tt.want || len(f.Upper) != tt.want {
				t.Error("parallel forecast arrays out of sync")
			}
		})
	}
}

// TestForecast_ShortHistory は実績が8日分未満の場合に全期間平均が使われることを検証します。
func TestForecast_ShortHistory(t *testing.T) {
	t.Parallel()

	// 5日分のみ。移動平均ウィンドウに満たないので全期間平均・トレンド0
	source := &stubSaleSource{sales: makeSales(5, 10)}
	fu := NewSeededForecastUsecase(source, 42, fixedNow)

	f := fu.Forecast("", 10)

	dailyTotal := 10 * len(salesentity.Catalog)
	if len(f.HistoricalDates) != 5 {
		t.Fatalf("expected 5 historical dates, got %d", len(f.HistoricalDates))
	}
	for i, p := range f.Predicted {
		low := int(float64(dailyTotal) * 0.9)
		high := int(float64(dailyTotal) * 1.1)
		if p < low-1 || p > high+1 {
			t.Errorf("prediction %d: %d outside bounds [%d,%d]", i, p, low, high)
		}
	}
}

// TestForecast_NoHistory は実績が無い場合のフォールバック（平均100）を検証します。
func TestForecast_NoHistory(t *testing.T) {
	t.Parallel()

	source := &stubSaleSource{}
	fu := NewSeededForecastUsecase(source, 42, fixedNow)

	f := fu.Forecast("Unobtainium", 10)

	if len(f.HistoricalDates) != 0 || len(f.HistoricalValues) != 0 {
		t.Errorf("expected empty historical series, got %d dates", len(f.HistoricalDates))
	}
	for i, p := range f.Predicted {
		// 平均100・ジッター±10
		if p < 89 || p > 111 {
			t.Errorf("prediction %d: %d outside fallback bounds", i, p)
		}
	}
	// 実績が無い場合、予測は現在日の翌日から始まる
	want := fixedNow().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	if f.ForecastDates[0] != want {
		t.Errorf("expected first forecast date %s, got %s", want, f.ForecastDates[0])
	}
}

// TestForecast_DrugLabel はdrugラベルのデフォルトとフィルタ動作を検証します。
func TestForecast_DrugLabel(t *testing.T) {
	t.Parallel()

	source := &stubSaleSource{sales: makeSales(180, 10)}

	t.Run("empty drug becomes All Drugs", func(t *testing.T) {
		t.Parallel()

		fu := NewSeededForecastUsecase(source, 42, fixedNow)
		f := fu.Forecast("", 10)
		if f.Drug != "All Drugs" {
			t.Errorf("expected drug label 'All Drugs', got %q", f.Drug)
		}
	})

	t.Run("drug filter restricts the series", func(t *testing.T) {
		t.Parallel()

		fu := NewSeededForecastUsecase(source, 42, fixedNow)
		f := fu.Forecast("paracetamol", 10)

		if f.Drug != "paracetamol" {
			t.Errorf("expected drug label to echo the query, got %q", f.Drug)
		}
		// 単一品目なので日次合計は1行分
		for i, v := range f.HistoricalValues {
			if v != 10 {
				t.Errorf("historical value %d: expected 10, got %d", i, v)
			}
		}
	})
}

// TestForecast_Determinism は同一シードで予測が再現されることを検証します。
func TestForecast_Determinism(t *testing.T) {
	t.Parallel()

	source := &stubSaleSource{sales: makeSales(180, 10)}

	a := NewSeededForecastUsecase(source, 42, fixedNow).Forecast("", 30)
	b := NewSeededForecastUsecase(source, 42, fixedNow).Forecast("", 30)

	for i := range a.Predicted {
		if a.Predicted[i] != b.Predicted[i] {
			t.Fatalf("prediction %d: same seed produced different values", i)
		}
	}
}
