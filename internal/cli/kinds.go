package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/infovalid/internal/config"
	"github.com/dmitrymomot/infovalid/pkg/validator"
)

type kindInfo struct {
	Name        validator.Kind `json:"name"`
	Description string         `json:"description"`
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := validator.Kinds()
			infos := make([]kindInfo, 0, len(kinds))
			for _, k := range kinds {
				infos = append(infos, kindInfo{Name: k, Description: k.Message()})
			}

			if a.output == config.OutputJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Description)
			}
			return tw.Flush()
		},
	}
}
