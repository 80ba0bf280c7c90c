package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"name":       "full_name",
	}

	p := Params{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "full_name ASC", clause)

	// kolom di luar whitelist jatuh ke default, tidak pernah diinjeksi mentah
	p = Params{SortBy: "password; DROP TABLE users", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC", clause)
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(95, 2, 25)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	// kosong → tetap 1 halaman
	pg = BuildPaginationFromPage(0, 1, 25)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}
