package store

import (
	"context"
	"errors"
	"testing"

	"parts-inventory/internal/models"
)

func partCreate(category, description string) models.PartCreate {
	return models.PartCreate{Category: category, Description: description}
}

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"0", 0},
		{"7", 7},
		{" 42 ", 42},
		{"-5", 0},
		{"abc", 0},
		{"12abc", 0},
		{"3.5", 0},
		{"1000000", 1000000},
	}
	for _, tt := range tests {
		if got := NormalizeQuantity(tt.in); got != tt.want {
			t.Errorf("NormalizeQuantity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEditableField(t *testing.T) {
	for _, field := range []string{
		"category", "subcategory", "description", "package", "container_id",
		"quantity", "notes", "datasheet_url", "pinout_url",
	} {
		if !EditableField(field) {
			t.Errorf("EditableField(%q) = false, want true", field)
		}
	}
	for _, field := range []string{"id", "updated_at", "category; DROP TABLE parts", "", "Category"} {
		if EditableField(field) {
			t.Errorf("EditableField(%q) = true, want false", field)
		}
	}
}

func TestUpdatePartFieldRejectsUnknownFieldBeforeStorage(t *testing.T) {
	// A nil DB proves the allow-list check happens before any query.
	s := New(nil)
	_, err := s.UpdatePartField(context.Background(), 1, "updated_at", "now")
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Expected ErrInvalidField, got %v", err)
	}
}

func TestCreatePartRejectsEmptyRequired(t *testing.T) {
	s := New(nil)
	for _, in := range []struct{ category, description string }{
		{"", "10k 1%"},
		{"Resistor", ""},
		{"   ", "10k 1%"},
		{"Resistor", "   "},
	} {
		_, err := s.CreatePart(context.Background(), partCreate(in.category, in.description))
		if !errors.Is(err, ErrEmptyRequired) {
			t.Errorf("CreatePart(%q, %q): expected ErrEmptyRequired, got %v",
				in.category, in.description, err)
		}
	}
}

func TestEnsureSkipsEmptyValues(t *testing.T) {
	// Empty lookup values are a no-op, so a nil DB must not be touched.
	s := New(nil)
	if err := s.EnsureCategory(context.Background(), "  "); err != nil {
		t.Errorf("EnsureCategory of whitespace should be a no-op, got %v", err)
	}
	if err := s.EnsureContainer(context.Background(), ""); err != nil {
		t.Errorf("EnsureContainer of empty should be a no-op, got %v", err)
	}
	if err := s.EnsureSubcategory(context.Background(), ""); err != nil {
		t.Errorf("EnsureSubcategory of empty should be a no-op, got %v", err)
	}
}
