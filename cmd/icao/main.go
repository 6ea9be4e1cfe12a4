package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/icao/internal/archive"
	"codeberg.org/snonux/icao/internal/cli"
	"codeberg.org/snonux/icao/internal/models"
	"codeberg.org/snonux/icao/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// The config file may move the output directory
	if !cmd.Flags().Changed("output") && viper.IsSet("output.directory") {
		flags.OutputDir = viper.GetString("output.directory")
	}

	if err := flags.Validate(args); err != nil {
		return err
	}

	// Handle --archive flag
	if flags.ArchiveCards {
		if _, err := archive.ArchiveCards(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive cards: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(context.Background())
	}

	proc := processor.NewProcessor(flags)

	if flags.CacheStats {
		if err := proc.PrintCacheStats(); err != nil {
			return err
		}
	}

	if flags.ClearCache {
		if err := proc.ClearAudioCache(); err != nil {
			return err
		}
	}

	if flags.ShowTable {
		proc.PrintTable()
	}

	if flags.AlphabetDeck {
		fmt.Printf("Generating alphabet deck...\n")
		outputPath, err := proc.GenerateAlphabetDeck()
		if err != nil {
			return err
		}
		fmt.Printf("Anki package created: %s\n", outputPath)
	}

	// Batch failures are reported after the remaining work is done
	var processErr error
	if flags.BatchFile != "" {
		processErr = proc.ProcessBatch()
	} else if len(args) > 0 {
		_, processErr = proc.ProcessText(strings.Join(args, " "))
	}

	if flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Printf("Anki package created: %s\n", outputPath)
		}
	}

	if processErr != nil {
		return processErr
	}

	if flags.GenerateAudio || flags.GenerateAnki {
		fmt.Printf("\nDone! Materials saved to: %s\n", flags.OutputDir)
	}
	return nil
}
