// Package usecase はインサイト一覧のビジネスロジックを実装します。
package usecase

import (
	"sort"
	"strings"

	"pharma_backend/internal/feature/insights/domain/entity"
)

// priorityRank は優先度の表示順を定義します。未知の優先度は末尾に回します。
var priorityRank = map[string]int{
	"critical": 0,
	"high":     1,
	"medium":   2,
	"low":      3,
}

// InsightSource はインサイトの供給元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type InsightSource interface {
	All() []entity.Insight
}

// insightUsecase はインサイトのフィルタリングとソートを実装します。
type insightUsecase struct {
	source InsightSource
}

// NewInsightUsecase はinsightUsecaseの新しいインスタンスを生成します。
func NewInsightUsecase(source InsightSource) *insightUsecase {
	return &insightUsecase{source: source}
}

// List はカテゴリ・優先度で絞り込んだインサイトを優先度順に返します。
// フィルタは大文字小文字を無視します。ソートは安定で、同一優先度内の
// カタログ順は保たれます。
func (iu *insightUsecase) List(category, priority string) []entity.Insight {
	insights := iu.source.All()

	filtered := make([]entity.Insight, 0, len(insights))
	for _, in := range insights {
		if category != "" && !strings.EqualFold(in.Category, category) {
			continue
		}
		if priority != "" && !strings.EqualFold(in.Priority, priority) {
			continue
		}
		filtered = append(filtered, in)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return rank(filtered[i].Priority) < rank(filtered[j].Priority)
	})

	return filtered
}

func rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return len(priorityRank)
}
