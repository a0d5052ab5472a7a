package models

// Names is the family of identifiers derived from a single entity name.
type Names struct {
	Base            string // name as supplied by the user
	ModelName       string // StudlyCase singular: "OrderItem"
	PluralModelName string // StudlyCase plural: "OrderItems"
	TableName       string // snake_case plural: "order_items"
	RouteSlug       string // kebab-case plural: "order-items"
	VariableName    string // camelCase singular: "orderItem"
	ServiceName     string // "OrderItemService"
	ControllerName  string // "OrderItemController"
	ResourceName    string // "OrderItemResource"
}

// Field is a schema field and its pipe-delimited validation rule.
type Field struct {
	Name string
	Rule string
}

// Schema is the ordered set of fields declared for one model.
type Schema struct {
	Fields []Field
}

// Len returns the number of fields, treating a nil schema as empty.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// Lookup returns the rule of the named field.
func (s *Schema) Lookup(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Rule, true
		}
	}
	return "", false
}

// ColumnType is a migration column builder method.
type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnInteger ColumnType = "integer"
	ColumnFloat   ColumnType = "float"
	ColumnBoolean ColumnType = "boolean"
	ColumnDate    ColumnType = "date"
)

// Column is the migration column derived from a schema field.
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// DTOKind is the CRUD operation a transfer object serves.
type DTOKind int

const (
	DTOStore DTOKind = iota
	DTOUpdate
	DTODelete
	DTOList
)

// DTOKinds lists every kind in generation order.
var DTOKinds = []DTOKind{DTOStore, DTOUpdate, DTODelete, DTOList}

func (k DTOKind) String() string {
	switch k {
	case DTOStore:
		return "Store"
	case DTOUpdate:
		return "Update"
	case DTODelete:
		return "Delete"
	case DTOList:
		return "List"
	default:
		panic("unknown DTOKind")
	}
}

// ParseDTOKind returns the kind named s ("Store", "Update", "Delete" or "List").
func ParseDTOKind(s string) (DTOKind, bool) {
	for _, k := range DTOKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// DTOLayer is the namespace family a transfer object is generated into.
type DTOLayer int

const (
	DTOLayerModel DTOLayer = iota
	DTOLayerService
)

func (l DTOLayer) String() string {
	switch l {
	case DTOLayerModel:
		return "Model"
	case DTOLayerService:
		return "Service"
	default:
		panic("unknown DTOLayer")
	}
}

// Namespace is a PHP namespace paired with the project directory it maps to.
type Namespace struct {
	Name string // App\Http\Controllers\Admin
	Dir  string // app/Http/Controllers/Admin
}

// GenerationContext is the read-only data shared by every render of one run.
type GenerationContext struct {
	Names

	Schema  *Schema
	Columns []Column

	ModelNamespace      Namespace
	ControllerNamespace Namespace
	ServiceNamespace    Namespace
	ResourceNamespace   Namespace
	HelperNamespace     Namespace
	DTOModelNamespace   Namespace
	DTOServiceNamespace Namespace

	// BaseControllerNamespace holds the framework's base Controller class.
	BaseControllerNamespace Namespace

	// UpdateExcluded are the keys toUpdate() never forwards to the model.
	UpdateExcluded []string
}

// ControllerFQN is the fully-qualified controller class name.
func (c *GenerationContext) ControllerFQN() string {
	return c.ControllerNamespace.Name + `\` + c.ControllerName
}

// DTOName is the class name of the transfer object of kind k.
func (c *GenerationContext) DTOName(k DTOKind) string {
	return k.String() + c.ModelName + "DTO"
}

// DTONamespace returns the namespace of layer l.
func (c *GenerationContext) DTONamespace(l DTOLayer) Namespace {
	if l == DTOLayerModel {
		return c.DTOModelNamespace
	}
	return c.DTOServiceNamespace
}
