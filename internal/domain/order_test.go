package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCanTransitionTo(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderPending, OrderPaid, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderPending, OrderDelivered, false},
		{OrderPaid, OrderShipped, true},
		{OrderPaid, OrderCancelled, true},
		{OrderPaid, OrderDelivered, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderPaid, false},
		{OrderCancelled, OrderPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" -> "+tt.to, func(t *testing.T) {
			order := &Order{Status: tt.from}
			assert.Equal(t, tt.want, order.CanTransitionTo(tt.to))
		})
	}
}

func TestProductEmbeddingText(t *testing.T) {
	p := &Product{Name: "Laptop", Description: "thin and light"}
	assert.Equal(t, "Laptop thin and light", p.EmbeddingText())

	// разделитель сохраняется и при пустом описании
	empty := &Product{Name: "Laptop"}
	assert.Equal(t, "Laptop ", empty.EmbeddingText())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleCustomer}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
