package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/pkg/executor"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the most recently rendered report document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			path, err := latestReport(cfg.Paths.Output)
			if err != nil {
				return err
			}

			exec := executor.New()
			opener := platformOpener()
			if _, err := exec.Execute(context.Background(), opener, path); err != nil {
				return err
			}

			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	return cmd
}

func latestReport(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read output dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".docx") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no rendered reports in %s", dir)
	}

	// Filenames embed the render timestamp, so the last name is the
	// newest report.
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}

func platformOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
