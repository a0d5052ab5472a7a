package internal

// ArgType is the type that specifies the command line arguments.
type ArgType struct {
	// Name is the entity name to scaffold.
	Name string

	// SchemaFile is the file holding the field rules of each model,
	// relative to ProjectRoot.
	SchemaFile string

	// APIRoute is the route file the resource route is appended to. Empty
	// means the configured default.
	APIRoute string

	// ControllerRoute is the sub-namespace of the controller, e.g. "Admin/V1".
	ControllerRoute string

	// ProjectRoot is the root of the target project. Defaults to the
	// current directory.
	ProjectRoot string

	// ConfigFile is the configuration file. Defaults to crudgen.yml in
	// ProjectRoot when present.
	ConfigFile string

	// TemplatePath is the path to use the user supplied templates instead of
	// the built in versions.
	TemplatePath string

	// Force regenerates per-entity files that already exist.
	Force bool

	// DryRun prints what would be written without touching the project.
	DryRun bool

	// NoSkeleton skips creating model, migration and resource skeletons.
	NoSkeleton bool

	// Verbose enables debug logging on stderr.
	Verbose bool
}
