package internal

import (
	"fmt"
	"regexp"
	"strings"

	"go.mercari.io/crudgen/models"
)

// InvalidNameError is returned when an entity name cannot be turned into
// identifiers.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid entity name %q: %s", e.Name, e.Reason)
}

var (
	entityNameRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_\- ]*$`)
	separatorRegexp  = regexp.MustCompile(`[\s\-_]+`)
)

// Resolve derives every naming form from base. The input is taken as the
// singular form; it is never singularized.
func Resolve(in Inflector, base string) (*models.Names, error) {
	name := strings.TrimSpace(base)
	switch {
	case name == "":
		return nil, &InvalidNameError{Name: base, Reason: "name is empty"}
	case strings.ContainsAny(name, `/\`) || strings.Contains(name, ".."):
		return nil, &InvalidNameError{Name: base, Reason: "name must not contain path separators"}
	case !entityNameRegexp.MatchString(name):
		return nil, &InvalidNameError{Name: base, Reason: "name must start with a letter and contain only letters, digits, '_', '-' or spaces"}
	}

	// normalize separators so camel humps and explicit separators split alike
	snake := strings.Trim(separatorRegexp.ReplaceAllString(name, "_"), "_")
	snake = CamelToSnake(snake)

	modelName := SnakeToCamel(snake)
	if IsReservedKeyword(modelName) {
		return nil, &InvalidNameError{Name: base, Reason: modelName + " is a reserved word in PHP"}
	}
	tableName := PluralizeIdentifier(in, CamelToSnake(modelName))

	return &models.Names{
		Base:            base,
		ModelName:       modelName,
		PluralModelName: SnakeToCamel(tableName),
		TableName:       tableName,
		RouteSlug:       strings.ReplaceAll(tableName, "_", "-"),
		VariableName:    LowerFirstWord(modelName),
		ServiceName:     modelName + "Service",
		ControllerName:  modelName + "Controller",
		ResourceName:    modelName + "Resource",
	}, nil
}
