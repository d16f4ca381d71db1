package menu

import (
	"testing"

	"github.com/google/uuid"
)

func TestLoadDishes(t *testing.T) {
	data := []byte(`[
		{"id": "d1", "name": "Caesar Salad", "price": "$14.00", "estimated_cost": 3.2, "margin_percentage": 77, "justification": "Romaine and croutons cost pennies."},
		{"name": "Margherita Pizza", "price": "$18.00", "estimated_cost": 6.5, "margin_percentage": 64, "justification": "Dough and mozzarella dominate cost."}
	]`)

	dishes, err := LoadDishes(data)
	if err != nil {
		t.Fatalf("LoadDishes failed: %v", err)
	}

	if len(dishes) != 2 {
		t.Fatalf("got %d dishes, want 2", len(dishes))
	}
	if dishes[0].ID != "d1" {
		t.Errorf("explicit id overwritten: %q", dishes[0].ID)
	}
	if dishes[0].Name != "Caesar Salad" || dishes[1].Name != "Margherita Pizza" {
		t.Errorf("input order not preserved: %q, %q", dishes[0].Name, dishes[1].Name)
	}
	if _, err := uuid.Parse(dishes[1].ID); err != nil {
		t.Errorf("missing id not replaced with a uuid: %q", dishes[1].ID)
	}
}

func TestLoadDishes_ClampsMargin(t *testing.T) {
	data := []byte(`[
		{"name": "Overstated", "margin_percentage": 140},
		{"name": "Understated", "margin_percentage": -5}
	]`)

	dishes, err := LoadDishes(data)
	if err != nil {
		t.Fatalf("LoadDishes failed: %v", err)
	}
	if dishes[0].MarginPercentage != 100 {
		t.Errorf("margin not clamped to 100: %d", dishes[0].MarginPercentage)
	}
	if dishes[1].MarginPercentage != 0 {
		t.Errorf("margin not clamped to 0: %d", dishes[1].MarginPercentage)
	}
}

func TestLoadDishes_Invalid(t *testing.T) {
	if _, err := LoadDishes([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("expected error for non-array input")
	}
	if _, err := LoadDishes([]byte(`[{"name": "  "}]`)); err == nil {
		t.Error("expected error for dish with blank name")
	}
}
