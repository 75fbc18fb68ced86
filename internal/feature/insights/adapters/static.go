// Package adapters はinsightsフィーチャーのデータソース実装を提供します。
package adapters

import (
	"pharma_backend/internal/feature/insights/domain/entity"
	"pharma_backend/internal/feature/insights/usecase"
)

// staticInsights は固定カタログを返すInsightSource実装です。
type staticInsights struct{}

// staticInsightsがInsightSourceを実装していることをコンパイル時に検証します。
var _ usecase.InsightSource = (*staticInsights)(nil)

// NewStaticInsights はstaticInsightsの新しいインスタンスを生成します。
func NewStaticInsights() *staticInsights {
	return &staticInsights{}
}

// All はカタログのコピーを返します。呼び出し側のソートが元データを並べ替えないようにするためです。
func (s *staticInsights) All() []entity.Insight {
	out := make([]entity.Insight, len(entity.Catalog))
	copy(out, entity.Catalog)
	return out
}
