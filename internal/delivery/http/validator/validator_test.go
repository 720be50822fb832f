package validator

import (
	"net/http"
	"testing"

	"dosetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_MedicationInput(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   *usecase.CreateMedicationInput
		wantErr bool
	}{
		{
			name:    "missing name and times",
			input:   &usecase.CreateMedicationInput{},
			wantErr: true,
		},
		{
			name:    "missing times",
			input:   &usecase.CreateMedicationInput{Name: "Amoxicillin"},
			wantErr: true,
		},
		{
			name:  "complete input",
			input: &usecase.CreateMedicationInput{Name: "Amoxicillin", Times: []any{"08:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}
