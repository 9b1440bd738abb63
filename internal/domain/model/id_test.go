package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshalAcceptsNumberAndString(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "quantity": 1}`), &item))
	assert.Equal(t, ID("42"), item.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "a-uuid", "quantity": 1}`), &item))
	assert.Equal(t, ID("a-uuid"), item.ID)
}

func TestIDMarshalsAsString(t *testing.T) {
	b, err := json.Marshal(map[string]ID{"product": IDFromInt64(42)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"product": "42"}`, string(b))
}

func TestCartRecalc(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: "1", Quantity: 2, TotalPrice: 20},
			{ID: "2", Quantity: 3, TotalPrice: 15},
		},
		//古い値は上書きされる
		TotalItems: 99,
		TotalPrice: 999,
	}

	cart.Recalc()

	assert.Equal(t, int64(5), cart.TotalItems)
	assert.Equal(t, float64(35), cart.TotalPrice)

	cart.Items = nil
	cart.Recalc()
	assert.Equal(t, int64(0), cart.TotalItems)
	assert.Equal(t, float64(0), cart.TotalPrice)
}
