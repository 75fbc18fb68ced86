package entity

import "math"

// Sale は生成された1日×1品目の売上行です。永続化されず、リクエストごとに再生成されます。
type Sale struct {
	ID        string
	DrugName  string
	Category  string
	UnitsSold int
	Revenue   float64
	Date      string // YYYY-MM-DD
}

// RoundCurrency は通貨値を小数第2位に丸めます。
// 丸め方式はround-half-away-from-zeroで、全ての金額計算で一貫して使用します。
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
