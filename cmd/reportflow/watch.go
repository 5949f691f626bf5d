package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/report-flow/internal/watcher"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the transcripts directory, summarizing each new file as it arrives",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, log, err := newPipeline(configPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if err := p.EnsureDirs(); err != nil {
				return err
			}

			w, err := watcher.New(cfg.Paths.Transcripts, p.SummarizeOne, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Transcripts)
			log.Info(ctx, "Daily summaries: %s", cfg.Paths.DailySummaries)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				log.Error(ctx, "Watcher error: %v", err)
			}

			cancel()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}
