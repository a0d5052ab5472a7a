package loader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mercari.io/crudgen/models"
)

func TestMapColumn(t *testing.T) {
	table := []struct {
		rule     string
		typ      models.ColumnType
		nullable bool
	}{
		{"required|string", models.ColumnString, false},
		{"nullable|numeric", models.ColumnFloat, true},
		{"numeric|nullable", models.ColumnFloat, true},
		{"required|integer|min:1", models.ColumnInteger, false},
		{"min:1|integer|required", models.ColumnInteger, false},
		{"boolean", models.ColumnBoolean, false},
		{"nullable|date|after:today", models.ColumnDate, true},
		{"integer|numeric", models.ColumnInteger, false},
		{"numeric|integer", models.ColumnInteger, false},
		{"date|boolean", models.ColumnBoolean, false},
		{"Integer", models.ColumnString, false},
		{"NULLABLE", models.ColumnString, false},
		{"int", models.ColumnString, false},
		{"email|max:255|unknown_token", models.ColumnString, false},
		{"date_format:Y-m-d", models.ColumnString, false},
		{"", models.ColumnString, false},
	}

	for _, tc := range table {
		got := MapColumn("field", tc.rule)
		expected := models.Column{Name: "field", Type: tc.typ, Nullable: tc.nullable}
		if diff := cmp.Diff(got, expected); diff != "" {
			t.Errorf("MapColumn(%q) (-got, +want)\n%s", tc.rule, diff)
		}
	}
}

func TestMapColumns(t *testing.T) {
	schema := &models.Schema{Fields: []models.Field{
		{Name: "name", Rule: "required|string"},
		{Name: "price", Rule: "nullable|numeric"},
		{Name: "released_on", Rule: "date"},
	}}

	got := MapColumns(schema)
	expected := []models.Column{
		{Name: "name", Type: models.ColumnString},
		{Name: "price", Type: models.ColumnFloat, Nullable: true},
		{Name: "released_on", Type: models.ColumnDate},
	}
	if diff := cmp.Diff(got, expected); diff != "" {
		t.Errorf("(-got, +want)\n%s", diff)
	}

	if got := MapColumns(&models.Schema{}); got != nil {
		t.Errorf("expected nil columns, got %v", got)
	}
	if got := MapColumns(nil); got != nil {
		t.Errorf("expected nil columns, got %v", got)
	}
}
