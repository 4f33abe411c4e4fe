package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid ISO date", value: "2024-03-15"},
		{name: "rejects US format", value: "03/15/2024", wantErr: true},
		{name: "rejects datetime", value: "2024-03-15T09:00:00Z", wantErr: true},
		{name: "rejects empty", value: "", wantErr: true},
		{name: "rejects impossible day", value: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVisitDate(t *testing.T) {
	assert.NoError(t, ValidateVisitDate("2024-03-15"))

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	assert.Error(t, ValidateVisitDate(future))
}
