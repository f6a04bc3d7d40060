package httpclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		shape   Shape
		payload string
	}{
		{name: "blank", body: "  ", shape: ShapeEmpty},
		{name: "null", body: "null", shape: ShapeEmpty},
		{name: "raw array", body: `[{"id":1}]`, shape: ShapeRaw, payload: `[{"id":1}]`},
		{name: "raw object", body: `{"id":1,"nome":"Ana"}`, shape: ShapeRaw, payload: `{"id":1,"nome":"Ana"}`},
		{name: "envelope object", body: `{"success":true,"data":{"id":1}}`, shape: ShapeEnveloped, payload: `{"id":1}`},
		{name: "envelope array", body: `{"data":[1,2]}`, shape: ShapeEnveloped, payload: `[1,2]`},
		{name: "envelope null", body: `{"data":null}`, shape: ShapeEnveloped},
		{name: "scalar data is a field", body: `{"id":3,"data":"2024-01-15","valor":10}`, shape: ShapeRaw, payload: `{"id":3,"data":"2024-01-15","valor":10}`},
		{name: "not json", body: `ok`, shape: ShapeRaw, payload: `ok`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shape, payload, _ := Unwrap([]byte(tc.body))
			assert.Equal(t, tc.shape, shape)
			assert.Equal(t, tc.payload, string(payload))
		})
	}
}

func TestUnwrap_Pagination(t *testing.T) {
	t.Run("pagination block", func(t *testing.T) {
		_, _, pg := Unwrap([]byte(`{"data":[],"pagination":{"page":2,"limit":10,"total":35,"totalPages":4}}`))
		require.NotNil(t, pg)
		assert.Equal(t, 2, pg.Page)
		assert.Equal(t, 35, pg.Total)
		assert.Equal(t, 4, pg.TotalPages)
	})

	t.Run("flat siblings", func(t *testing.T) {
		_, _, pg := Unwrap([]byte(`{"data":[],"total":7,"page":1,"limit":50}`))
		require.NotNil(t, pg)
		assert.Equal(t, 7, pg.Total)
		assert.Equal(t, 50, pg.Limit)
	})

	t.Run("none", func(t *testing.T) {
		_, _, pg := Unwrap([]byte(`{"data":[]}`))
		assert.Nil(t, pg)
	})
}
