package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	initt "github.com/inizio/initt"
	"github.com/inizio/initt/pkg/catalog"
	"github.com/inizio/initt/pkg/logging"
	"github.com/inizio/initt/pkg/prompt"
)

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.NewConsole(cmd.OutOrStdout())

	logging.Infof(logger, "Version", "Project Generator v%s", initt.Version)

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	collector := prompt.NewCollector(prompt.WithLogger(logger))

	template, err := collector.SelectTemplate(ctx, cat.Names())
	if err != nil {
		return err
	}
	def, ok := cat.Lookup(template)
	if !ok {
		return fmt.Errorf("unsupported template type: %q", template)
	}

	basePath, err := collector.AskBasePath(ctx)
	if err != nil {
		return err
	}

	values, err := collector.Collect(ctx, def)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	logger.Logf(logging.LevelStart, "Start", "Creating %s project at %s", def.Name, basePath)

	creator, err := initt.NewCreator(initt.WithLogger(logger))
	if err != nil {
		return err
	}
	result := creator.Create(ctx, def, basePath, values)

	if result.Success() {
		logging.Successf(logger, "Success", "Project creation completed")
	} else {
		logging.Errorf(logger, "Failed", "Errors occurred during project creation")
	}
	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	cat := initt.DefaultCatalog()
	if templatesFile == "" {
		return cat, nil
	}
	overlay, err := catalog.LoadOverlay(templatesFile)
	if err != nil {
		return nil, err
	}
	return catalog.Merge(cat, overlay)
}
