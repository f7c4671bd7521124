package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/models"
)

func TestEncodeQuery(t *testing.T) {
	q := models.Query{
		Columns: []string{"id", "name"},
		Filters: []models.Filter{
			{Column: "name", Op: models.OpILike, Value: "kopi"},
			{Column: "category", Op: models.OpEq, Value: "Minuman"},
		},
		OrderBy: "name",
		Offset:  6,
		Limit:   6,
		Count:   true,
	}

	v := EncodeQuery(q)
	assert.Equal(t, "id,name", v.Get("select"))
	assert.Equal(t, "ilike.kopi", v.Get("name"))
	assert.Equal(t, "eq.Minuman", v.Get("category"))
	assert.Equal(t, "name.asc", v.Get("order"))
	assert.Equal(t, "6", v.Get("offset"))
	assert.Equal(t, "6", v.Get("limit"))
	assert.Equal(t, "exact", v.Get("count"))

	// пустая выборка не добавляет параметров
	assert.Empty(t, EncodeQuery(models.Query{}))
}

func TestDecodeQuery(t *testing.T) {
	v, err := url.ParseQuery("select=id,name&name=ilike.kopi%20susu&umkm_id=eq.u-1&order=name.desc&offset=5&limit=5&count=exact")
	require.NoError(t, err)

	q, err := DecodeQuery(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, q.Columns)
	assert.ElementsMatch(t, []models.Filter{
		{Column: "name", Op: models.OpILike, Value: "kopi susu"},
		{Column: "umkm_id", Op: models.OpEq, Value: "u-1"},
	}, q.Filters)
	assert.Equal(t, "name", q.OrderBy)
	assert.True(t, q.Desc)
	assert.Equal(t, 5, q.Offset)
	assert.Equal(t, 5, q.Limit)
	assert.True(t, q.Count)
}

func TestDecodeQuery_ValueWithDots(t *testing.T) {
	q, err := DecodeQuery(url.Values{"name": {"eq.Kopi v.2"}})
	require.NoError(t, err)
	require.Len(t, q.Filters, 1)
	assert.Equal(t, "Kopi v.2", q.Filters[0].Value)
}

func TestDecodeQuery_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "bad order direction", query: "order=name.sideways"},
		{name: "negative offset", query: "offset=-1"},
		{name: "bad limit", query: "limit=many"},
		{name: "bad count", query: "count=planned"},
		{name: "filter without operator", query: "category=Makanan"},
		{name: "unknown operator", query: "price=gt.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			_, err = DecodeQuery(v)
			assert.Error(t, err)
		})
	}
}
