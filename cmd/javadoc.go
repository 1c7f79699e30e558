package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/junitmig/internal/domain"
)

var javadocRunFlags runFlags
var javadocReportsFlag string

// javadocCmd represents the javadoc command.
var javadocCmd = newJavadocCmd()

func newJavadocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "javadoc",
		Short: "Add missing Javadoc first sentence periods",
		Long: `Read checkstyle XML reports and append a period to every Javadoc line
reported with "First sentence should end with a period". Only the reported
lines are touched.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reports := javadocReportsFlag
			if reports == "" {
				reports = settings.Reports()
			}

			_, err := workflow.FixJavadoc(domain.JavadocArgs{
				RunOptions: javadocRunFlags.options(),
				Reports:    reports,
			})

			return err
		},
	}
	addRunFlags(cmd, &javadocRunFlags)
	cmd.Flags().StringVar(&javadocReportsFlag, "reports", "", "glob of checkstyle-result.xml files (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(javadocCmd)
}
