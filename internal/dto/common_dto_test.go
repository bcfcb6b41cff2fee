package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		query    PageQuery
		expected PageQuery
	}{
		{"zero values take defaults", PageQuery{}, PageQuery{Page: 1, PageSize: defaultPageSize}},
		{"negative page", PageQuery{Page: -3, PageSize: 10}, PageQuery{Page: 1, PageSize: 10}},
		{"oversized page", PageQuery{Page: 2, PageSize: 1000}, PageQuery{Page: 2, PageSize: maxPageSize}},
		{"valid values kept", PageQuery{Page: 4, PageSize: 50}, PageQuery{Page: 4, PageSize: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Normalize())
		})
	}
}
