package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки векторного конвейера
	ErrEmptyEmbeddingText   = fmt.Errorf("embedding text is empty")
	ErrVectorEmbeddingEmpty = fmt.Errorf("vector embedding is empty")
	ErrEmbeddingProvider    = fmt.Errorf("embedding provider failure")
	ErrVectorIndex          = fmt.Errorf("vector index failure")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrQueryTextRequired    = fmt.Errorf("query text is required")
	ErrTopKMustBePositive   = fmt.Errorf("top_k must be positive")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidRating        = fmt.Errorf("rating must be between 1 and 5")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")
	ErrInvalidDiscount      = fmt.Errorf("discount must be between 0 and 100")
	ErrInvalidOrderStatus   = fmt.Errorf("invalid order status transition")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrEmptyCart            = fmt.Errorf("shopping cart is empty")

	// 401 / 403
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidToken       = fmt.Errorf("invalid token")
	ErrTokenExpired       = fmt.Errorf("token expired")
	ErrForbidden          = fmt.Errorf("not enough permissions")

	// 404 Not Found
	ErrProductNotFound   = fmt.Errorf("product not found")
	ErrBrandNotFound     = fmt.Errorf("brand not found")
	ErrCategoryNotFound  = fmt.Errorf("category not found")
	ErrWarrantyNotFound  = fmt.Errorf("warranty not found")
	ErrInventoryNotFound = fmt.Errorf("inventory not found")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrCartNotFound      = fmt.Errorf("shopping cart not found")
	ErrOrderNotFound     = fmt.Errorf("order not found")
	ErrPaymentNotFound   = fmt.Errorf("payment not found")
	ErrDeliveryNotFound  = fmt.Errorf("delivery not found")
	ErrFeedbackNotFound  = fmt.Errorf("feedback not found")
	ErrPromotionNotFound = fmt.Errorf("promotion not found")
	ErrSessionNotFound   = fmt.Errorf("chat session not found")

	// 409 Conflict
	ErrEmailTaken        = fmt.Errorf("email already registered")
	ErrDuplicateFeedback = fmt.Errorf("feedback already exists for this product")

	// 500
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
