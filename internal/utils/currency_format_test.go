package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
	"github.com/SscSPs/bank_account_kata/internal/utils"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		precision int
		want      string
	}{
		{name: "rounds half up", amount: 12.3456, precision: 2, want: "12.35"},
		{name: "pads", amount: 12, precision: 2, want: "12.00"},
		{name: "whole units", amount: 12.3456, precision: 0, want: "12"},
		{name: "negative amount", amount: -15, precision: 2, want: "-15.00"},
		{name: "negative precision falls back", amount: 1.5, precision: -1, want: "1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatWithPrecision(domain.AnAmountOf(tt.amount), tt.precision))
		})
	}
}
