package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePromotion_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		req     *CreatePromotionReq
		wantErr error
	}{
		{
			name: "empty title",
			req: &CreatePromotionReq{
				Title:              "  ",
				DiscountPercentage: decimal.NewFromInt(10),
				StartDate:          now,
				EndDate:            now.Add(time.Hour),
			},
			wantErr: e.ErrMissingFields,
		},
		{
			name: "negative discount",
			req: &CreatePromotionReq{
				Title:              "Sale",
				DiscountPercentage: decimal.NewFromInt(-1),
				StartDate:          now,
				EndDate:            now.Add(time.Hour),
			},
			wantErr: e.ErrInvalidDiscount,
		},
		{
			name: "discount over 100",
			req: &CreatePromotionReq{
				Title:              "Sale",
				DiscountPercentage: decimal.NewFromFloat(100.01),
				StartDate:          now,
				EndDate:            now.Add(time.Hour),
			},
			wantErr: e.ErrInvalidDiscount,
		},
		{
			name: "end before start",
			req: &CreatePromotionReq{
				Title:              "Sale",
				DiscountPercentage: decimal.NewFromInt(5),
				StartDate:          now,
				EndDate:            now.Add(-time.Hour),
			},
			wantErr: e.ErrMissingFields,
		},
	}

	uc := NewPromotionUC(&fakePromotionRepo{}, &fakeProductRepo{}, logger.NewSlogLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreatePromotion(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePromotion_BoundaryDiscounts(t *testing.T) {
	now := time.Now()
	uc := NewPromotionUC(&fakePromotionRepo{}, &fakeProductRepo{}, logger.NewSlogLogger())

	for _, discount := range []int64{0, 100} {
		promotion, err := uc.CreatePromotion(context.Background(), &CreatePromotionReq{
			Title:              "Edge",
			DiscountPercentage: decimal.NewFromInt(discount),
			StartDate:          now,
			EndDate:            now.Add(24 * time.Hour),
		})
		require.NoError(t, err)
		assert.True(t, promotion.Active)
	}
}
