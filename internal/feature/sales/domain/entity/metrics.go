package entity

// RankedStat は品目またはカテゴリ単位の収益・販売数の集計値です。
type RankedStat struct {
	Name    string
	Revenue float64
	Units   int
}

// Metrics は直近30日間の売上集計です。
type Metrics struct {
	TotalRevenue   float64
	TotalUnits     int
	AvgDailyDemand float64
	TopDrugs       []RankedStat
	Categories     []RankedStat
}

// Trend は日付ごとの売上推移です。3つのスライスは並行配列で、日付昇順に並びます。
type Trend struct {
	Dates   []string
	Units   []int
	Revenue []float64
}
