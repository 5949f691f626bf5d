package main

import (
	"context"

	"github.com/spf13/cobra"
)

func dailyCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Normalize transcripts and create the per-day summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, _, err := newPipeline(configPath)
			if err != nil {
				return err
			}
			return p.RunDaily(context.Background())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}

func masterCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "master",
		Short: "Synthesize the weekly master body from persisted daily summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, _, err := newPipeline(configPath)
			if err != nil {
				return err
			}
			return p.RunMaster(context.Background())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}

func frameCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Generate the opening and closing paragraphs from the master body",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, _, err := newPipeline(configPath)
			if err != nil {
				return err
			}
			p.RunFraming(context.Background())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}

func renderCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Assemble the persisted master body and framing into the Word document",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, log, err := newPipeline(configPath)
			if err != nil {
				return err
			}

			ctx := context.Background()
			outPath, err := p.RunRender(ctx)
			if err != nil {
				return err
			}

			log.Info(ctx, "Document rendered -> %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}
