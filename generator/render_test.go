package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mercari.io/crudgen/config"
	"go.mercari.io/crudgen/internal"
	"go.mercari.io/crudgen/models"
	"go.mercari.io/crudgen/tplbin"
)

func newTestContext(t *testing.T, name string, schema *models.Schema, sub string) *models.GenerationContext {
	t.Helper()

	names, err := internal.Resolve(newTestInflector(t), name)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	c, err := NewGenerationContext(names, schema, sub, config.Default())
	if err != nil {
		t.Fatalf("NewGenerationContext: %v", err)
	}
	return c
}

func TestNewGenerationContext(t *testing.T) {
	c := newTestContext(t, "order_item", nil, `Admin\Shop`)

	got := map[string]models.Namespace{
		"model":       c.ModelNamespace,
		"controller":  c.ControllerNamespace,
		"service":     c.ServiceNamespace,
		"resource":    c.ResourceNamespace,
		"helper":      c.HelperNamespace,
		"dto model":   c.DTOModelNamespace,
		"dto service": c.DTOServiceNamespace,
		"base":        c.BaseControllerNamespace,
	}
	expected := map[string]models.Namespace{
		"model":       {Name: `App\Models`, Dir: "app/Models"},
		"controller":  {Name: `App\Http\Controllers\Admin\Shop`, Dir: "app/Http/Controllers/Admin/Shop"},
		"service":     {Name: `App\Services`, Dir: "app/Services"},
		"resource":    {Name: `App\Http\Resources`, Dir: "app/Http/Resources"},
		"helper":      {Name: `App\Helpers`, Dir: "app/Helpers"},
		"dto model":   {Name: `App\DTOs\Model\OrderItem`, Dir: "app/DTOs/Model/OrderItem"},
		"dto service": {Name: `App\DTOs\Service\OrderItem`, Dir: "app/DTOs/Service/OrderItem"},
		"base":        {Name: `App\Http\Controllers`, Dir: "app/Http/Controllers"},
	}
	if diff := cmp.Diff(got, expected); diff != "" {
		t.Errorf("(-got, +want)\n%s", diff)
	}

	if got, want := c.ControllerFQN(), `App\Http\Controllers\Admin\Shop\OrderItemController`; got != want {
		t.Errorf("ControllerFQN: got %q, expected: %q", got, want)
	}
	if c.Schema == nil {
		t.Error("Schema must never be nil")
	}
}

func TestRenderRoute(t *testing.T) {
	r := NewRenderer(newTestInflector(t), "")

	table := []struct {
		name     string
		sub      string
		expected string
	}{
		{"product", "", `Route::apiResource('products', \App\Http\Controllers\ProductController::class);`},
		{"order_item", "", `Route::apiResource('order-items', \App\Http\Controllers\OrderItemController::class);`},
		{"category", "Admin", `Route::apiResource('categories', \App\Http\Controllers\Admin\CategoryController::class);`},
	}

	for _, tc := range table {
		got, err := r.RenderRoute(newTestContext(t, tc.name, nil, tc.sub))
		if err != nil {
			t.Fatalf("RenderRoute: %v", err)
		}
		if got != tc.expected {
			t.Errorf("got %q, expected: %q", got, tc.expected)
		}
	}
}

func TestRenderMigrationColumns(t *testing.T) {
	r := NewRenderer(newTestInflector(t), "")
	c := newTestContext(t, "product", &models.Schema{Fields: []models.Field{
		{Name: "name", Rule: "required|string"},
		{Name: "price", Rule: "nullable|numeric"},
		{Name: "stock", Rule: "integer|min:0"},
		{Name: "active", Rule: "boolean"},
		{Name: "released_on", Rule: "date|nullable"},
	}}, "")

	got, err := r.RenderMigrationColumns(c)
	if err != nil {
		t.Fatalf("RenderMigrationColumns: %v", err)
	}

	expected := strings.Join([]string{
		`            $table->string('name');`,
		`            $table->float('price')->nullable();`,
		`            $table->integer('stock');`,
		`            $table->boolean('active');`,
		`            $table->date('released_on')->nullable();`,
	}, "\n")
	if diff := cmp.Diff(got, expected); diff != "" {
		t.Errorf("(-got, +want)\n%s", diff)
	}

	guards := MigrationColumnGuards(c)
	if diff := cmp.Diff(guards, []string{"('name')", "('price')", "('stock')", "('active')", "('released_on')"}); diff != "" {
		t.Errorf("guards (-got, +want)\n%s", diff)
	}
}

func TestRenderMigrationColumnsSkipsID(t *testing.T) {
	r := NewRenderer(newTestInflector(t), "")
	c := newTestContext(t, "product", &models.Schema{Fields: []models.Field{
		{Name: "id", Rule: "integer"},
		{Name: "name", Rule: "required|string"},
	}}, "")

	got, err := r.RenderMigrationColumns(c)
	if err != nil {
		t.Fatalf("RenderMigrationColumns: %v", err)
	}
	if diff := cmp.Diff(got, `            $table->string('name');`); diff != "" {
		t.Errorf("(-got, +want)\n%s", diff)
	}
	if diff := cmp.Diff(MigrationColumnGuards(c), []string{"('name')"}); diff != "" {
		t.Errorf("guards (-got, +want)\n%s", diff)
	}
}

func TestRenderDTO(t *testing.T) {
	r := NewRenderer(newTestInflector(t), "")
	c := newTestContext(t, "product", &models.Schema{Fields: []models.Field{
		{Name: "name", Rule: "required|string"},
		{Name: "code", Rule: `regex:/^[a-z']+$/`},
	}}, "")

	table := []struct {
		kind     models.DTOKind
		layer    models.DTOLayer
		contains []string
		excludes []string
	}{
		{
			kind:  models.DTOStore,
			layer: models.DTOLayerModel,
			contains: []string{
				"namespace App\\DTOs\\Model\\Product;\n",
				"class StoreProductDTO extends ValidatedDTO",
				"        return [];\n",
			},
			excludes: []string{"'name'"},
		},
		{
			kind:  models.DTOStore,
			layer: models.DTOLayerService,
			contains: []string{
				"namespace App\\DTOs\\Service\\Product;\n",
				"            'name' => 'required|string',\n",
				`            'code' => 'regex:/^[a-z\']+$/',` + "\n",
				"public function toCreate(): array",
			},
			excludes: []string{"'id' =>"},
		},
		{
			kind:  models.DTOUpdate,
			layer: models.DTOLayerService,
			contains: []string{
				"class UpdateProductDTO extends ValidatedDTO",
				"            'id' => 'required|int',\n            'name' => 'required|string',\n",
				"in_array($key, ['id'])",
			},
		},
		{
			kind:     models.DTODelete,
			layer:    models.DTOLayerService,
			contains: []string{"        return [\n            'id' => 'required|int',\n        ];\n"},
			excludes: []string{"'name'"},
		},
		{
			kind:  models.DTOList,
			layer: models.DTOLayerService,
			contains: []string{
				"            'per_page' => 'nullable|int',\n            'page' => 'nullable|int',\n",
				"$data['per_page'] ?? 15;",
				"$data['page'] ?? 1;",
			},
			excludes: []string{"'name'"},
		},
	}

	for _, tc := range table {
		t.Run(tc.layer.String()+tc.kind.String(), func(t *testing.T) {
			got, err := r.RenderDTO(c, tc.kind, tc.layer)
			if err != nil {
				t.Fatalf("RenderDTO: %v", err)
			}
			for _, s := range tc.contains {
				if !strings.Contains(got, s) {
					t.Errorf("missing %q in\n%s", s, got)
				}
			}
			for _, s := range tc.excludes {
				if strings.Contains(got, s) {
					t.Errorf("unexpected %q in\n%s", s, got)
				}
			}
		})
	}
}

func TestRenderResponsesHelper(t *testing.T) {
	r := NewRenderer(newTestInflector(t), "")

	// the helper does not depend on the entity
	a, err := r.RenderResponsesHelper(newTestContext(t, "product", nil, ""))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.RenderResponsesHelper(newTestContext(t, "order_item", &models.Schema{Fields: []models.Field{{Name: "x", Rule: "string"}}}, "Admin"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("(-got, +want)\n%s", diff)
	}

	for _, fn := range []string{"returnError", "returnSuccessMessage", "returnResource", "returnCreatedResource", "returnData", "returnValidationError", "returnArrayErrors", "returnObject"} {
		if !strings.Contains(a, "public static function "+fn+"(") {
			t.Errorf("helper lacks %s", fn)
		}
	}
}

func TestTemplatePath(t *testing.T) {
	dir := t.TempDir()
	custom := "Route::resource('{{ .RouteSlug }}', {{ .ControllerName }}::class);\n"
	if err := os.WriteFile(filepath.Join(dir, RouteTemplate.Filename()), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer(newTestInflector(t), dir)
	c := newTestContext(t, "person", nil, "")

	got, err := r.RenderRoute(c)
	if err != nil {
		t.Fatalf("RenderRoute: %v", err)
	}
	if want := "Route::resource('people', PersonController::class);"; got != want {
		t.Errorf("got %q, expected: %q", got, want)
	}

	// templates missing from dir come from the defaults
	got, err = r.RenderResource(c)
	if err != nil {
		t.Fatalf("RenderResource: %v", err)
	}
	if !strings.Contains(got, "class PersonResource extends JsonResource") {
		t.Errorf("default resource template not used:\n%s", got)
	}
}

func TestTemplateFuncs(t *testing.T) {
	dir := t.TempDir()
	custom := "{{ pluralize .VariableName }} {{ snake .ModelName }} {{ camel .TableName }} {{ dto \"Update\" . }} {{ dtofqn \"List\" . }}"
	if err := os.WriteFile(filepath.Join(dir, ResourceTemplate.Filename()), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewRenderer(newTestInflector(t), dir).RenderResource(newTestContext(t, "order_item", nil, ""))
	if err != nil {
		t.Fatalf("RenderResource: %v", err)
	}
	if want := `orderItems order_item OrderItems UpdateOrderItemDTO App\DTOs\Service\OrderItem\ListOrderItemDTO`; got != want {
		t.Errorf("got %q, expected: %q", got, want)
	}
}

func TestCopyDefaultTemplates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	if err := CopyDefaultTemplates(dir); err != nil {
		t.Fatalf("CopyDefaultTemplates: %v", err)
	}

	for _, tt := range []TemplateType{ModelTemplate, MigrationColumnTemplate, DTOListTemplate, RouteTemplate} {
		got, err := os.ReadFile(filepath.Join(dir, tt.Filename()))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		want, err := tplbin.Assets.ReadFile(tt.Filename())
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(got), string(want)); diff != "" {
			t.Errorf("%s (-got, +want)\n%s", tt, diff)
		}
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("README not copied: %v", err)
	}
	for _, fn := range []string{"pluralize", "snake", "camel"} {
		if !strings.Contains(string(readme), "`"+fn+"`") {
			t.Errorf("README does not document %s", fn)
		}
	}

	// copying again over identical files is allowed
	if err := CopyDefaultTemplates(dir); err != nil {
		t.Errorf("second copy: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, RouteTemplate.Filename()), []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CopyDefaultTemplates(dir); err == nil {
		t.Error("expected an error for a customized template")
	}
}
