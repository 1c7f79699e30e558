package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/junitmig/internal/config"
	"github.com/mouse-blink/junitmig/internal/domain"
	"github.com/mouse-blink/junitmig/internal/domain/rewriter"
)

var fixRunFlags runFlags
var fixTargetFlags targetFlags
var fixExtendedFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Move assertion messages to the last argument",
		Long: `Rewrite JUnit 4 style assertion calls whose first argument is the failure
message so the message comes last, as JUnit 5 expects:

  assertTrue("value was wrong", result.equals(expected));
  assertTrue(result.equals(expected), "value was wrong");

Targets are explicit files, directories, or every file matching the
configured pattern under the test directory with --all. A directory target
ending in "/..." is searched recursively.`,
		RunE: func(_ *cobra.Command, args []string) error {
			targets, err := fixTargetFlags.targets(args)
			if err != nil {
				return err
			}

			_, err = workflow.Fix(domain.FixArgs{
				Targets:    targets,
				RunOptions: fixRunFlags.options(),
				Rewriter:   newRewriter(settings, fixExtendedFlag),
			})

			return err
		},
	}
	addRunFlags(cmd, &fixRunFlags)
	addTargetFlags(cmd, &fixTargetFlags)
	cmd.Flags().BoolVarP(&fixExtendedFlag, "extended", "e", false, "also fix assertNull, assertEquals and the other message-first overloads")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

// newRewriter builds the rewriter described by s. Extended rules come from
// the built-in table, narrowed to extended_methods when that list is set.
// Listed names missing from the table get the two-argument form.
func newRewriter(s *config.Settings, extended bool) *rewriter.Rewriter {
	rules := make([]rewriter.Rule, 0, len(s.Methods)+len(rewriter.ExtendedRules))
	for _, method := range s.Methods {
		rules = append(rules, rewriter.Rule{Method: method, MinArgs: 2})
	}

	if extended {
		rules = append(rules, extendedRules(s.ExtendedMethods)...)
	}

	return rewriter.New(
		rules,
		rewriter.NewClassifier(s.MessageBuilders, s.ConditionMarkers),
		rewriter.NewFormatter(s.ColumnBudget, s.ContinuationIndent),
	)
}

func extendedRules(methods []string) []rewriter.Rule {
	if len(methods) == 0 {
		return rewriter.ExtendedRules
	}

	known := make(map[string]rewriter.Rule, len(rewriter.ExtendedRules))
	for _, rule := range rewriter.ExtendedRules {
		known[rule.Method] = rule
	}

	rules := make([]rewriter.Rule, 0, len(methods))
	for _, method := range methods {
		rule, ok := known[method]
		if !ok {
			rule = rewriter.Rule{Method: method, MinArgs: 2}
		}

		rules = append(rules, rule)
	}

	return rules
}
