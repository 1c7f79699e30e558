package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/junitmig/internal/domain"
)

var migrateRunFlags runFlags
var migrateTargetFlags targetFlags

// migrateCmd represents the migrate command.
var migrateCmd = newMigrateCmd()

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [files...]",
		Short: "Migrate JUnit 4 imports and annotations to JUnit 5",
		Long: `Rename JUnit 4 imports and lifecycle annotations to their JUnit 5
equivalents, comment out runner imports, and tag untagged test classes with
the tags from the junit5.tags config key.`,
		RunE: func(_ *cobra.Command, args []string) error {
			targets, err := migrateTargetFlags.targets(args)
			if err != nil {
				return err
			}

			_, err = workflow.Migrate(domain.MigrateArgs{
				Targets:    targets,
				RunOptions: migrateRunFlags.options(),
				Tags:       settings.Tags(),
			})

			return err
		},
	}
	addRunFlags(cmd, &migrateRunFlags)
	addTargetFlags(cmd, &migrateTargetFlags)

	return cmd
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
