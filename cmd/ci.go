package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/junitmig/internal/config"
	"github.com/mouse-blink/junitmig/internal/domain"
	"github.com/mouse-blink/junitmig/internal/domain/fixers"
	m "github.com/mouse-blink/junitmig/internal/model"
)

var ciRunFlags runFlags

// ciCmd represents the ci command.
var ciCmd = newCICmd()

func newCICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci [workflow-file]",
		Short: "Update HDF release download steps of a CI workflow",
		Long: `Replace the fixed-name "gh release download" steps for HDF4 and HDF5 with
steps that honour the use_hdf_name and use_hdf5_name inputs, then apply the
custom line rules from the ci.rules config key.

The workflow file defaults to the ci.workflow config key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := settings.Workflow()
			if len(args) == 1 {
				path = args[0]
			}

			rules, err := lineRules(settings.CI)
			if err != nil {
				return err
			}

			_, err = workflow.PatchWorkflow(domain.CIArgs{
				RunOptions: ciRunFlags.options(),
				Workflow:   m.Path(path),
				Rules:      rules,
			})

			return err
		},
	}
	addRunFlags(cmd, &ciRunFlags)

	return cmd
}

func init() {
	rootCmd.AddCommand(ciCmd)
}

func lineRules(ci *config.CIConfig) ([]fixers.LineRule, error) {
	if ci == nil {
		return nil, nil
	}

	rules := make([]fixers.LineRule, 0, len(ci.Rules))

	for _, r := range ci.Rules {
		pattern, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("ci rule %q: %w", r.Name, err)
		}

		rules = append(rules, fixers.LineRule{Name: r.Name, Pattern: pattern, Replace: r.Replace})
	}

	return rules, nil
}
