package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создает новый товар в каталоге с изображениями
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			brand_id	formData	integer			true	"ID бренда"
//	@Param			name		formData	string			true	"Название товара"
//	@Param			images		formData	file			false	"Изображения товара"
//	@Success		201			{object}	usecase.ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil && !errors.Is(err, e.ErrNoImages) {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}
	req.Images = images

	product, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, product)
}

// updateProduct
//
//	@Summary	Обновление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		integer	true	"ID товара"
//	@Param		request	body		updateProductRequest	true	"Новые данные товара"
//	@Success	200		{object}	usecase.ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateProductRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:                      id,
		BrandID:                 body.BrandID,
		CategoryID:              body.CategoryID,
		WarrantyID:              body.WarrantyID,
		Name:                    body.Name,
		Description:             body.Description,
		Model3DURL:              body.Model3DURL,
		ARURL:                   body.ARURL,
		TechnicalSpecifications: body.TechnicalSpecifications,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// deleteProduct
//
//	@Summary	Деактивация товара
//	@Tags		products
//	@Security	BearerAuth
//	@Param		id	path	integer	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// getProduct
//
//	@Summary	Получение товара по ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		integer	true	"ID товара"
//	@Success	200	{object}	usecase.ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// listProducts
//
//	@Summary	Список товаров каталога
//	@Tags		products
//	@Produce	json
//	@Param		page		query		integer	false	"Номер страницы"
//	@Param		page_size	query		integer	false	"Размер страницы"
//	@Param		brand_id	query		integer	false	"Фильтр по бренду"
//	@Param		category	query		string	false	"Фильтр по категории"
//	@Param		search		query		string	false	"Поиск по названию"
//	@Success	200			{object}	usecase.Page[usecase.ProductResponse]
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := &usecase.ListProductsReq{
		Page:     *parsePageParams(r),
		BrandID:  queryInt64Ptr(r, "brand_id"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	page, err := p.productUsecase.ListProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, page)
}

type updateProductRequest struct {
	BrandID                 int64  `json:"brand_id"`
	CategoryID              *int64 `json:"category_id"`
	WarrantyID              *int64 `json:"warranty_id"`
	Name                    string `json:"name"`
	Description             string `json:"description"`
	Model3DURL              string `json:"model_3d_url"`
	ARURL                   string `json:"ar_url"`
	TechnicalSpecifications string `json:"technical_specifications"`
}

func parseProductForm(r *http.Request) (*usecase.CreateProductReq, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	brandIDStr := r.FormValue("brand_id")

	if name == "" || brandIDStr == "" {
		return nil, e.Wrap("name and brand_id are required", e.ErrMissingFields)
	}

	brandID, err := strconv.ParseInt(brandIDStr, 10, 64)
	if err != nil {
		return nil, e.Wrap("brand_id", e.ErrStatusBadRequest)
	}

	return &usecase.CreateProductReq{
		BrandID:                 brandID,
		CategoryID:              formInt64Ptr(r, "category_id"),
		WarrantyID:              formInt64Ptr(r, "warranty_id"),
		Name:                    name,
		Description:             r.FormValue("description"),
		Model3DURL:              r.FormValue("model_3d_url"),
		ARURL:                   r.FormValue("ar_url"),
		TechnicalSpecifications: r.FormValue("technical_specifications"),
	}, nil
}

func formInt64Ptr(r *http.Request, name string) *int64 {
	raw := r.FormValue(name)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
