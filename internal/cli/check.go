package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/infovalid/pkg/logger"
	"github.com/dmitrymomot/infovalid/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> <value>...",
		Short: "Check one or more values against a format",
		Example: `  infovalid check mobile 13800138000
  infovalid check id_number 11010519491231002X 110105491231002`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := validator.ParseKind(args[0])
			if err != nil {
				return err
			}

			results := make([]result, 0, len(args)-1)
			for _, v := range args[1:] {
				results = append(results, check(kind, v))
			}

			rep := newReport(results)
			a.log.Debug("check finished", logger.Kind(kind.String()), logger.Counts(rep.Passed, rep.Failed))
			return a.write(rep)
		},
	}
}
