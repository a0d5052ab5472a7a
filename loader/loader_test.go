package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mercari.io/crudgen/models"
)

func TestParseSchema(t *testing.T) {
	table := []struct {
		name     string
		data     string
		model    string
		expected *models.Schema
	}{
		{
			name: "YAML",
			data: `
Product:
  name: required|string
  price: nullable|numeric
  stock: integer
`,
			model: "Product",
			expected: &models.Schema{Fields: []models.Field{
				{Name: "name", Rule: "required|string"},
				{Name: "price", Rule: "nullable|numeric"},
				{Name: "stock", Rule: "integer"},
			}},
		},
		{
			name:  "JSON",
			data:  `{"Product": {"title": "required|string", "body": "nullable|string", "author_ids": "array"}}`,
			model: "Product",
			expected: &models.Schema{Fields: []models.Field{
				{Name: "title", Rule: "required|string"},
				{Name: "body", Rule: "nullable|string"},
				{Name: "author_ids", Rule: "array"},
			}},
		},
		{
			name: "OrderKeptAgainstAlphabet",
			data: `
Product:
  zeta: string
  alpha: string
  mid: string
`,
			model: "Product",
			expected: &models.Schema{Fields: []models.Field{
				{Name: "zeta", Rule: "string"},
				{Name: "alpha", Rule: "string"},
				{Name: "mid", Rule: "string"},
			}},
		},
		{
			name: "OtherModel",
			data: `
Category:
  name: required|string
Product:
  sku: required|string
`,
			model: "Product",
			expected: &models.Schema{Fields: []models.Field{
				{Name: "sku", Rule: "required|string"},
			}},
		},
		{
			name: "AbsentModel",
			data: `
Category:
  name: required|string
`,
			model:    "Product",
			expected: &models.Schema{},
		},
		{
			name:     "EmptyDocument",
			data:     "",
			model:    "Product",
			expected: &models.Schema{},
		},
		{
			name:     "EmptyModel",
			data:     "Product:\n",
			model:    "Product",
			expected: &models.Schema{},
		},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSchema([]byte(tc.data), "schema.yml", tc.model)
			if err != nil {
				t.Fatalf("ParseSchema: %v", err)
			}
			if diff := cmp.Diff(got, tc.expected); diff != "" {
				t.Errorf("(-got, +want)\n%s", diff)
			}
		})
	}
}

func TestParseSchemaFormatError(t *testing.T) {
	table := []struct {
		name string
		data string
	}{
		{name: "Scalar", data: "hello"},
		{name: "ModelNotMapping", data: "Product: required|string"},
		{name: "ModelList", data: "Product: [name, price]"},
		{name: "NestedRule", data: "Product:\n  name:\n    rule: string\n"},
		{name: "NumberRule", data: "Product:\n  price: 10\n"},
		{name: "BoolRule", data: "Product:\n  active: true\n"},
		{name: "NullRule", data: "Product:\n  name:\n"},
		{name: "BadFieldName", data: "Product:\n  \"na-me\": string\n"},
		{name: "NumericFieldName", data: "Product:\n  10: string\n"},
		{name: "DuplicateField", data: `{"Product": {"name": "string", "name": "integer"}}`},
		{name: "BrokenOtherModel", data: "Category: 1\nProduct:\n  name: string\n"},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSchema([]byte(tc.data), "schema.yml", "Product")
			var formatErr *SchemaFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected SchemaFormatError, got %v", err)
			}
			if formatErr.Path != "schema.yml" {
				t.Errorf("Path: got %q, expected: %q", formatErr.Path, "schema.yml")
			}
		})
	}
}

func TestLoadSchema(t *testing.T) {
	dir := t.TempDir()

	t.Run("NoPath", func(t *testing.T) {
		got, err := LoadSchema("", "Product")
		if err != nil {
			t.Fatalf("LoadSchema: %v", err)
		}
		if got.Len() != 0 {
			t.Errorf("expected empty schema, got %v", got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		path := filepath.Join(dir, "missing.yml")
		_, err := LoadSchema(path, "Product")
		var notFound *SchemaFileNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected SchemaFileNotFoundError, got %v", err)
		}
		if notFound.Path != path {
			t.Errorf("Path: got %q, expected: %q", notFound.Path, path)
		}
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(dir, "schema.yml")
		if err := os.WriteFile(path, []byte("Product:\n  name: required|string\n"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := LoadSchema(path, "Product")
		if err != nil {
			t.Fatalf("LoadSchema: %v", err)
		}
		expected := &models.Schema{Fields: []models.Field{{Name: "name", Rule: "required|string"}}}
		if diff := cmp.Diff(got, expected); diff != "" {
			t.Errorf("(-got, +want)\n%s", diff)
		}
	})
}
