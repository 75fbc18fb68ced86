// Package entity はforecastフィーチャーのドメインエンティティを定義します。
package entity

// Forecast は移動平均ベースの需要予測結果です。
// Predicted/Lower/UpperはForecastDatesと並行配列です。
type Forecast struct {
	HistoricalDates  []string
	HistoricalValues []int
	ForecastDates    []string
	Predicted        []int
	Lower            []int
	Upper            []int
	Drug             string
}
