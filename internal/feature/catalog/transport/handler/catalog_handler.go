// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharma_backend/internal/api"
	salesentity "pharma_backend/internal/feature/sales/domain/entity"
)

// CatalogUsecase はカタログ参照のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	List() []salesentity.Drug
}

// CatalogHandler は医薬品カタログのHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は指定されたusecaseでCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List はカタログ全品目を返します。
//
// エンドポイント例:
// GET /api/drugs
func (h *CatalogHandler) List(c *gin.Context) {
	drugs := h.uc.List()

	out := make([]api.DrugResponse, 0, len(drugs))
	for _, d := range drugs {
		out = append(out, api.DrugResponse{
			Name:      d.Name,
			Category:  d.Category,
			BasePrice: d.BasePrice,
		})
	}

	c.JSON(http.StatusOK, api.DrugsResponse{Drugs: out})
}
