// Package usecase は医薬品カタログ参照のビジネスロジックを実装します。
package usecase

import (
	salesentity "pharma_backend/internal/feature/sales/domain/entity"
)

// catalogUsecase は固定カタログの参照ユースケースです。
type catalogUsecase struct{}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase() *catalogUsecase {
	return &catalogUsecase{}
}

// List はカタログ全品目のコピーを返します。
func (cu *catalogUsecase) List() []salesentity.Drug {
	out := make([]salesentity.Drug, len(salesentity.Catalog))
	copy(out, salesentity.Catalog)
	return out
}
