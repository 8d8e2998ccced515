package models_test

import (
	"strings"
	"testing"

	"parts-inventory/internal/models"
	"parts-inventory/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func validCreate() models.PartCreate {
	return models.PartCreate{
		Category:    "Resistor",
		Description: "10k 1%",
	}
}

func TestPartCreateValidation(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(validCreate()))

	in := validCreate()
	in.Category = ""
	assert.Error(t, validator.ValidateStruct(in), "category is required")

	in = validCreate()
	in.Category = strings.Repeat("x", 25)
	assert.Error(t, validator.ValidateStruct(in), "category over 24 chars")

	in = validCreate()
	in.Description = ""
	assert.Error(t, validator.ValidateStruct(in), "description is required")

	in = validCreate()
	in.Description = strings.Repeat("x", 201)
	assert.Error(t, validator.ValidateStruct(in), "description over 200 chars")

	in = validCreate()
	in.Subcategory = strings.Repeat("x", 65)
	assert.Error(t, validator.ValidateStruct(in), "subcategory over 64 chars")

	in = validCreate()
	in.Notes = strings.Repeat("x", 1001)
	assert.Error(t, validator.ValidateStruct(in), "notes over 1000 chars")

	in = validCreate()
	in.Quantity = 1000001
	assert.Error(t, validator.ValidateStruct(in), "quantity over the cap")

	// Error messages carry the form field name, not the Go field name
	in = validCreate()
	in.ContainerID = strings.Repeat("x", 33)
	err := validator.ValidateStruct(in)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "container_id")
}
