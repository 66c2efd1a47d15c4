package http

import (
	"net/http"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CatalogHandler обслуживает справочники каталога:
// бренды, категории, гарантии и складские остатки.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// BRANDS

// createBrand
//
//	@Summary	Создание бренда
//	@Tags		brands
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		nameRequest	true	"Название бренда"
//	@Success	201		{object}	BrandResponse
//	@Router		/brands [post]
func (h *CatalogHandler) createBrand(w http.ResponseWriter, r *http.Request) {
	var body nameRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	brand, err := h.catalogUsecase.CreateBrand(r.Context(), body.Name)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewBrandResponse(brand))
}

func (h *CatalogHandler) updateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body nameRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	brand, err := h.catalogUsecase.UpdateBrand(r.Context(), id, body.Name)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewBrandResponse(brand))
}

func (h *CatalogHandler) getBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	brand, err := h.catalogUsecase.GetBrand(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewBrandResponse(brand))
}

// listBrands
//
//	@Summary	Список брендов
//	@Tags		brands
//	@Produce	json
//	@Success	200	{object}	usecase.Page[BrandResponse]
//	@Router		/brands [get]
func (h *CatalogHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogUsecase.ListBrands(r.Context(), parsePageParams(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapPage(page, NewBrandResponse))
}

func (h *CatalogHandler) deactivateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeactivateBrand(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// CATEGORIES

func (h *CatalogHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body nameRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.CreateCategory(r.Context(), body.Name)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewCategoryResponse(category))
}

func (h *CatalogHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body nameRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.UpdateCategory(r.Context(), id, body.Name)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryResponse(category))
}

func (h *CatalogHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.GetCategory(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryResponse(category))
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogUsecase.ListCategories(r.Context(), parsePageParams(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapPage(page, NewCategoryResponse))
}

func (h *CatalogHandler) deactivateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeactivateCategory(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// WARRANTIES

// createWarranty
//
//	@Summary	Создание гарантии бренда
//	@Tags		warranties
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		warrantyRequest	true	"Данные гарантии"
//	@Success	201		{object}	WarrantyResponse
//	@Router		/warranties [post]
func (h *CatalogHandler) createWarranty(w http.ResponseWriter, r *http.Request) {
	var body warrantyRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	warranty, err := h.catalogUsecase.CreateWarranty(r.Context(), &domain.Warranty{
		BrandID:        body.BrandID,
		Name:           body.Name,
		Description:    body.Description,
		DurationMonths: body.DurationMonths,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewWarrantyResponse(warranty))
}

func (h *CatalogHandler) getWarranty(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	warranty, err := h.catalogUsecase.GetWarranty(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewWarrantyResponse(warranty))
}

func (h *CatalogHandler) listWarranties(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogUsecase.ListWarranties(r.Context(), parsePageParams(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapPage(page, NewWarrantyResponse))
}

func (h *CatalogHandler) deleteWarranty(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeleteWarranty(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// INVENTORY

// upsertInventory
//
//	@Summary	Установка остатка и цен товара
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		integer				true	"ID товара"
//	@Param		request	body		inventoryRequest	true	"Остаток и цены"
//	@Success	200		{object}	InventoryResponse
//	@Router		/products/{id}/inventory [put]
func (h *CatalogHandler) upsertInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body inventoryRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	inv, err := h.catalogUsecase.UpsertInventory(r.Context(), &domain.Inventory{
		ProductID: productID,
		Stock:     body.Stock,
		PriceUSD:  body.PriceUSD,
		PriceBS:   body.PriceBS,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewInventoryResponse(inv))
}

func (h *CatalogHandler) getInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	inv, err := h.catalogUsecase.GetInventory(r.Context(), productID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewInventoryResponse(inv))
}

type nameRequest struct {
	Name string `json:"name"`
}

type warrantyRequest struct {
	BrandID        int64  `json:"brand_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DurationMonths int32  `json:"duration_months"`
}

type inventoryRequest struct {
	Stock    int32           `json:"stock"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	PriceBS  decimal.Decimal `json:"price_bs"`
}
