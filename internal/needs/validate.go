package needs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"entraide/pkg/types"
)

func validateCreateNeedInput(input types.CreateNeedInput) error {
	invalid := types.NewInvalidInputError()

	if !required(input.Title) {
		invalid.Add("title", "required")
	} else if utf8.RuneCountInString(input.Title) > types.NeedTitleMaxLen {
		invalid.Add("title", fmt.Sprintf("must be at most %d characters", types.NeedTitleMaxLen))
	}

	if !required(input.Description) {
		invalid.Add("description", "required")
	} else if utf8.RuneCountInString(input.Description) > types.NeedDescriptionMaxLen {
		invalid.Add("description", fmt.Sprintf("must be at most %d characters", types.NeedDescriptionMaxLen))
	}

	if !required(input.City) {
		invalid.Add("city", "required")
	} else if !types.NeedCity(input.City).Valid() {
		invalid.Add("city", "must be one of the listed cities")
	}

	if !required(input.Category) {
		invalid.Add("category", "required")
	} else if !types.NeedCategory(input.Category).Valid() {
		invalid.Add("category", "must be one of the listed categories")
	}

	if !required(input.WhatsappNumber) {
		invalid.Add("whatsapp_number", "required")
	}

	return invalid.OrNil()
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}
