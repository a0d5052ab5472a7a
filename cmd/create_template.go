package cmd

import (
	"github.com/spf13/cobra"
	"go.mercari.io/crudgen/generator"
)

var createTemplatePath string

var createTemplateCmd = &cobra.Command{
	Use:     "create-template",
	Short:   "crudgen create-template generates default template files",
	Example: `crudgen create-template --template-path templates`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generator.CopyDefaultTemplates(createTemplatePath)
	},
}

func init() {
	createTemplateCmd.Flags().StringVar(&createTemplatePath, "template-path", "templates", "destination template path")
	rootCmd.AddCommand(createTemplateCmd)
}
