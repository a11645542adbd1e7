package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationDefaults(t *testing.T) {
	p := GetPagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Offset())
}

func TestGetPaginationCapsPageSize(t *testing.T) {
	p := GetPagination(2, 500)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 100, p.Offset())
}

func TestGetPaginationNegativeValues(t *testing.T) {
	p := GetPagination(-3, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
}

func TestOffset(t *testing.T) {
	p := GetPagination(3, 25)
	assert.Equal(t, 50, p.Offset())
}
