package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse отображает доменную ошибку в HTTP-статус и сообщение.
// Неизвестные ошибки схлопываются в 500 без утечки деталей наружу.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case isOneOf(err,
		e.ErrStatusBadRequest, e.ErrMissingFields, e.ErrProductNameRequired,
		e.ErrQueryTextRequired, e.ErrTopKMustBePositive, e.ErrInvalidPrice,
		e.ErrPricePrecision, e.ErrInvalidRating, e.ErrInvalidQuantity,
		e.ErrInvalidDiscount, e.ErrInvalidOrderStatus, e.ErrNoImages,
		e.ErrTooManyImages, e.ErrFileTooLarge, e.ErrExpectedMultipart,
		e.ErrEmptyCart):
		return http.StatusBadRequest, rootMessage(err)
	case isOneOf(err, e.ErrInvalidCredentials, e.ErrInvalidToken, e.ErrTokenExpired):
		return http.StatusUnauthorized, rootMessage(err)
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, e.ErrForbidden.Error()
	case isOneOf(err,
		e.ErrProductNotFound, e.ErrBrandNotFound, e.ErrCategoryNotFound,
		e.ErrWarrantyNotFound, e.ErrInventoryNotFound, e.ErrUserNotFound,
		e.ErrCartNotFound, e.ErrOrderNotFound, e.ErrPaymentNotFound,
		e.ErrDeliveryNotFound, e.ErrFeedbackNotFound, e.ErrPromotionNotFound,
		e.ErrSessionNotFound):
		return http.StatusNotFound, rootMessage(err)
	case isOneOf(err, e.ErrEmailTaken, e.ErrDuplicateFeedback):
		return http.StatusConflict, rootMessage(err)
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func isOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// rootMessage возвращает текст sentinel-ошибки без внутренних префиксов Wrap.
func rootMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStatusBadRequest, err))
	}
	return nil
}

// parseIDParam читает числовой path-параметр chi-роута.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}
	return id, nil
}

// parsePageParams читает параметры пагинации из query string.
// Невалидные значения молча заменяются дефолтами в Normalize.
func parsePageParams(r *http.Request) *usecase.PageParams {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	params := &usecase.PageParams{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	params.Normalize()

	return params
}

func queryInt64Ptr(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryKeywords разбирает повторяющийся параметр keyword и csv-вариант keywords.
func queryKeywords(r *http.Request) []string {
	q := r.URL.Query()

	keywords := make([]string, 0, 4)
	keywords = append(keywords, q["keyword"]...)
	if csv := q.Get("keywords"); csv != "" {
		for _, kw := range strings.Split(csv, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}

	if len(keywords) == 0 {
		return nil
	}
	return keywords
}

func queryTopK(r *http.Request, defaultTopK int) int {
	raw := r.URL.Query().Get("top_k")
	if raw == "" {
		return defaultTopK
	}

	topK, err := strconv.Atoi(raw)
	if err != nil {
		return defaultTopK
	}
	return topK
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
