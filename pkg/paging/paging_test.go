package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults for zero values", Params{}, Params{Page: 1, PageSize: DefaultPageSize}},
		{"negative page", Params{Page: -3, PageSize: 10}, Params{Page: 1, PageSize: 10}},
		{"oversized page size is capped", Params{Page: 2, PageSize: 500}, Params{Page: 2, PageSize: MaxPageSize}},
		{"valid params untouched", Params{Page: 4, PageSize: 25}, Params{Page: 4, PageSize: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 60, Params{Page: 4, PageSize: 20}.Offset())
}

func TestSortSpecOrderBy(t *testing.T) {
	spec := SortSpec{
		Columns: map[string][]string{
			"balance":    {"balance"},
			"level":      {"level", "experience"},
			"updated_at": {"updated_at"},
		},
		Default: "balance",
	}

	t.Run("known key descending", func(t *testing.T) {
		assert.Equal(t, "updated_at DESC, id ASC", spec.OrderBy("updated_at", false))
	})

	t.Run("known key ascending", func(t *testing.T) {
		assert.Equal(t, "balance ASC, id ASC", spec.OrderBy("balance", true))
	})

	t.Run("unknown key falls back to default", func(t *testing.T) {
		assert.Equal(t, "balance DESC, id ASC", spec.OrderBy("nonsense", false))
	})

	t.Run("empty key falls back to default", func(t *testing.T) {
		assert.Equal(t, "balance DESC, id ASC", spec.OrderBy("", false))
	})

	t.Run("multi column key applies direction to each", func(t *testing.T) {
		assert.Equal(t, "level DESC, experience DESC, id ASC", spec.OrderBy("level", false))
	})

	t.Run("custom tie break", func(t *testing.T) {
		qualified := SortSpec{
			Columns:  map[string][]string{"code": {"coupons.code"}},
			Default:  "code",
			TieBreak: "coupons.id ASC",
		}
		assert.Equal(t, "coupons.code ASC, coupons.id ASC", qualified.OrderBy("code", true))
	})
}
