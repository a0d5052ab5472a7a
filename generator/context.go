package generator

import (
	"path"
	"regexp"
	"strings"

	"go.mercari.io/crudgen/config"
	"go.mercari.io/crudgen/loader"
	"go.mercari.io/crudgen/models"
)

var namespaceSegmentRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// splitControllerPath splits a controller sub-namespace given with either
// separator, e.g. "Admin/V1" or `Admin\V1`.
func splitControllerPath(sub string) ([]string, error) {
	trimmed := strings.Trim(sub, `/\ `)
	if trimmed == "" {
		return nil, nil
	}

	segs := strings.Split(strings.ReplaceAll(trimmed, `\`, "/"), "/")
	for _, s := range segs {
		if !namespaceSegmentRegexp.MatchString(s) {
			return nil, &InvalidControllerPathError{Path: sub, Reason: "segment " + `"` + s + `"` + " is not an identifier"}
		}
	}
	return segs, nil
}

func namespace(cfg *config.Config, segs ...string) models.Namespace {
	return models.Namespace{
		Name: strings.Join(append([]string{cfg.AppNamespace}, segs...), `\`),
		Dir:  path.Join(append([]string{cfg.AppDir}, segs...)...),
	}
}

// NewGenerationContext assembles the data shared by every render of one run.
func NewGenerationContext(names *models.Names, schema *models.Schema, controllerSub string, cfg *config.Config) (*models.GenerationContext, error) {
	segs, err := splitControllerPath(controllerSub)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		schema = &models.Schema{}
	}

	return &models.GenerationContext{
		Names:               *names,
		Schema:              schema,
		Columns:             loader.MapColumns(schema),
		ModelNamespace:      namespace(cfg, "Models"),
		ControllerNamespace: namespace(cfg, append([]string{"Http", "Controllers"}, segs...)...),
		ServiceNamespace:    namespace(cfg, "Services"),
		ResourceNamespace:   namespace(cfg, "Http", "Resources"),
		HelperNamespace:     namespace(cfg, "Helpers"),
		DTOModelNamespace:   namespace(cfg, "DTOs", "Model", names.ModelName),
		DTOServiceNamespace: namespace(cfg, "DTOs", "Service", names.ModelName),
		UpdateExcluded:      UpdateExcluded(schema, cfg.UpdateExcludedFields),

		BaseControllerNamespace: namespace(cfg, "Http", "Controllers"),
	}, nil
}
