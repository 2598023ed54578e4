package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/tuuid"
)

func newGenerateCmd(logger func() hclog.Logger) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print new version-1 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			if count < 1 {
				err := fmt.Errorf("count must be at least 1, got %d", count)
				log.Error("invalid flag", "error", err)
				return err
			}

			gen := tuuid.NewGenerator(tuuid.WithLogger(log.Named("generator")))
			for i := 0; i < count; i++ {
				id, err := gen.New()
				if err != nil {
					log.Error("error generating UUID", "error", err)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			log.Debug("generated UUIDs", "count", count)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs to generate")
	return cmd
}
