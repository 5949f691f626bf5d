package main

import (
	"context"

	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the whole pipeline: transcripts -> daily -> master -> framing -> document",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, log, err := newPipeline(configPath)
			if err != nil {
				return err
			}

			ctx := context.Background()
			outPath, err := p.Run(ctx)
			if err != nil {
				return err
			}

			log.Info(ctx, "Weekly report ready -> %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}
