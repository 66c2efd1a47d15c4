//go:generate goverter gen github.com/AVTech-ve/ecommerce-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertPointerInt64
type ProductConverter interface {
	ToRedisModel(entity *usecase.ProductResponse) *ProductRedisModel
	ToUseCase(model *ProductRedisModel) *usecase.ProductResponse
	ToArrRedisModel(entities []usecase.ProductResponse) []ProductRedisModel
	ToArrUseCase(models []ProductRedisModel) []usecase.ProductResponse
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}
