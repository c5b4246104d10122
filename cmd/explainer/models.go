package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/cli"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
)

var modelsDownloadFlags struct {
	all bool
	dir string
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List and download models",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known models and their download state",
	RunE:  runModelsList,
}

var modelsDownloadCmd = &cobra.Command{
	Use:   "download [model...]",
	Short: "Download model files",
	Long: `Download GGUF model files into the configured models directory.

Files that already exist are skipped, so re-running after an interrupted
download resumes cheaply. API-backed models like claude have nothing to
download.

Examples:
  # Download one model
  explainer models download tinyllama

  # Download everything downloadable
  explainer models download --all`,
	RunE: runModelsDownload,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDownloadCmd)

	modelsDownloadCmd.Flags().BoolVar(&modelsDownloadFlags.all, "all", false, "download all local models")
	modelsDownloadCmd.Flags().StringVar(&modelsDownloadFlags.dir, "dir", "", "override download directory")
}

func runModelsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	downloader := models.NewDownloader(cfg.Download.Dir, nil)

	for _, key := range models.CatalogKeys() {
		model, err := models.Lookup(key)
		if err != nil {
			return err
		}

		state := "not downloaded"
		switch {
		case model.API:
			state = "API (no download)"
		default:
			if _, err := os.Stat(downloader.Path(model)); err == nil {
				state = "downloaded"
			}
		}

		fmt.Printf("%-12s %-28s %-10s %s\n", key, model.Name, model.Family, state)
	}
	return nil
}

func runModelsDownload(cmd *cobra.Command, args []string) error {
	if !modelsDownloadFlags.all && len(args) == 0 {
		return fmt.Errorf("name at least one model or pass --all (known: %v)", models.CatalogKeys())
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Download.Dir
	if modelsDownloadFlags.dir != "" {
		dir = modelsDownloadFlags.dir
	}

	downloader := models.NewDownloader(dir, func(label string) cli.ProgressReporter {
		return cli.NewByteProgress(label, os.Stderr)
	})

	keys := args
	if modelsDownloadFlags.all {
		keys = nil
		for _, key := range models.CatalogKeys() {
			model, err := models.Lookup(key)
			if err != nil {
				return err
			}
			if !model.API {
				keys = append(keys, key)
			}
		}
	}

	ctx := cli.SetupSignalHandler()
	for _, key := range keys {
		model, err := models.Lookup(key)
		if err != nil {
			return err
		}
		if err := downloader.Download(ctx, model); err != nil {
			return cli.NewCommandError("models download", err)
		}
	}
	return nil
}
