package needs

import (
	"strings"
	"testing"

	"entraide/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateNeedInput(t *testing.T) {
	base := types.CreateNeedInput{
		Title:          "Titre",
		Description:    "Description",
		City:           string(types.NeedCityRabat),
		Category:       string(types.NeedCategoryCleaning),
		WhatsappNumber: "0661000000",
	}

	tests := []struct {
		name      string
		mutate    func(*types.CreateNeedInput)
		wantField string
		wantRule  string
	}{
		{
			name:      "empty title",
			mutate:    func(in *types.CreateNeedInput) { in.Title = "" },
			wantField: "title",
			wantRule:  "required",
		},
		{
			name:      "whitespace title",
			mutate:    func(in *types.CreateNeedInput) { in.Title = "   " },
			wantField: "title",
			wantRule:  "required",
		},
		{
			name:      "title too long",
			mutate:    func(in *types.CreateNeedInput) { in.Title = strings.Repeat("a", 121) },
			wantField: "title",
			wantRule:  "must be at most 120 characters",
		},
		{
			name:      "description too long",
			mutate:    func(in *types.CreateNeedInput) { in.Description = strings.Repeat("b", 2001) },
			wantField: "description",
			wantRule:  "must be at most 2000 characters",
		},
		{
			name:      "unknown city",
			mutate:    func(in *types.CreateNeedInput) { in.City = "Gotham" },
			wantField: "city",
			wantRule:  "must be one of the listed cities",
		},
		{
			name:      "unknown category",
			mutate:    func(in *types.CreateNeedInput) { in.Category = "Plumbing" },
			wantField: "category",
			wantRule:  "must be one of the listed categories",
		},
		{
			name:      "missing whatsapp number",
			mutate:    func(in *types.CreateNeedInput) { in.WhatsappNumber = "" },
			wantField: "whatsapp_number",
			wantRule:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)

			err := validateCreateNeedInput(input)
			require.Error(t, err)

			var invalid *types.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, invalid.Fields[tt.wantField], tt.wantRule)
		})
	}
}

func TestValidateCreateNeedInputBoundary(t *testing.T) {
	input := types.CreateNeedInput{
		Title:          strings.Repeat("a", 120),
		Description:    strings.Repeat("b", 2000),
		City:           string(types.NeedCityMeknes),
		Category:       string(types.NeedCategoryUrgentDonation),
		WhatsappNumber: "0661000000",
	}

	assert.NoError(t, validateCreateNeedInput(input))
}

func TestValidateCreateNeedInputAccumulatesRules(t *testing.T) {
	err := validateCreateNeedInput(types.CreateNeedInput{})
	require.Error(t, err)

	var invalid *types.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Fields, 5, "every empty field reports a rule")
}
