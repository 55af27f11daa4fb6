package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	initt "github.com/inizio/initt"
	"github.com/inizio/initt/pkg/logging"
	"github.com/inizio/initt/pkg/prompt"
)

var templatesFile string

var rootCmd = &cobra.Command{
	Use:     "initt",
	Short:   "Interactive project scaffolder",
	Long:    `initt creates new project skeletons from a catalog of named templates, collecting parameters through interactive prompts and running each template's post-creation hooks.`,
	Version: initt.Version,
	RunE:    runWizard,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&templatesFile, "templates", "", "YAML file with extra template definitions layered over the builtins")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "initt version %s\n", initt.Version)
	},
}

// Execute runs the CLI and returns the process exit code: 0 on normal
// completion, 1 on user cancellation or an unhandled top-level error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger := logging.NewConsole(os.Stderr)
		if errors.Is(err, prompt.ErrAborted) {
			logging.Warningf(logger, "Cancel", "User cancelled the operation")
		} else {
			logging.Errorf(logger, "Error", "Program exception: %v", err)
		}
		return 1
	}
	return 0
}
