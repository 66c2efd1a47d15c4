package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatchesByKeywords(t *testing.T) {
	matches := []VectorMatch{
		{ID: "a", Score: 0.9, Payload: Payload{PayloadText: "Gaming laptop with RTX graphics"}},
		{ID: "b", Score: 0.8, Payload: Payload{PayloadText: "Office laptop for documents"}},
		{ID: "c", Score: 0.7, Payload: Payload{PayloadText: "RTX desktop workstation"}},
	}

	t.Run("no keywords passes everything through", func(t *testing.T) {
		got := FilterMatchesByKeywords(matches, nil)
		assert.Len(t, got, 3)
	})

	t.Run("substring match keeps order", func(t *testing.T) {
		got := FilterMatchesByKeywords(matches, []string{"RTX"})
		assert.Equal(t, []string{"a", "c"}, matchIDs(got))
	})

	t.Run("any keyword is enough", func(t *testing.T) {
		got := FilterMatchesByKeywords(matches, []string{"Office", "desktop"})
		assert.Equal(t, []string{"b", "c"}, matchIDs(got))
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		got := FilterMatchesByKeywords(matches, []string{"rtx"})
		assert.Empty(t, got)
	})

	t.Run("result may be shorter than top_k", func(t *testing.T) {
		got := FilterMatchesByKeywords(matches, []string{"workstation"})
		assert.Len(t, got, 1)
	})

	t.Run("missing text field never matches", func(t *testing.T) {
		noText := []VectorMatch{{ID: "x", Payload: Payload{PayloadBrand: "Acme"}}}
		got := FilterMatchesByKeywords(noText, []string{"Acme"})
		assert.Empty(t, got)
	})
}

func matchIDs(matches []VectorMatch) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestNewProductPayload(t *testing.T) {
	p := NewProductPayload("Sony", "audio", "WH-1000 wireless headphones", "40h battery")

	assert.Equal(t, "Sony", p[PayloadBrand])
	assert.Equal(t, "audio", p[PayloadCategory])
	assert.Equal(t, "WH-1000 wireless headphones", p[PayloadText])
	assert.Equal(t, "40h battery", p[PayloadTechSpecs])
}

func TestNewBrandEqFilter(t *testing.T) {
	f := NewBrandEqFilter("Sony")

	assert.Equal(t, PayloadBrand, f.Field)
	assert.Equal(t, FilterEq, f.Kind)
	assert.Equal(t, "Sony", f.Eq)
}
