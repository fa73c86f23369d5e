package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Siddiq2772/scapper-with-ui/internal/formatter"
)

var outputFile string

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category [theme [organization]]]",
		Short: "Print one level of the hierarchy",
		Long: `Print the items the browser would show for the given selections.

No arguments lists categories, one lists the themes of that category, two
list organizations and three list the matching problem statements.

Examples:
  psbrowse list
  psbrowse list "Smart Automation"
  psbrowse list "Smart Automation" "Robotics" "AICTE" -o json`,
		Args: cobra.MaximumNArgs(3),
		RunE: runList,
	}

	cmd.Flags().StringVar(&outputFile, "output-file", "", "save output to file instead of stdout")
	return cmd
}

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the details of one problem statement",
		Long: `Print the detail view of the problem statement with the given id.

Examples:
  psbrowse show SIH1524
  psbrowse show SIH1524 -o markdown`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringVar(&outputFile, "output-file", "", "save output to file instead of stdout")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	f, err := getFormatter(getOutputFormat())
	if err != nil {
		return err
	}

	session, err := openSession(commandContext(cmd), cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	if err := session.Goto(args...); err != nil {
		return err
	}

	output, err := f.FormatSnapshot(session.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return handleOutputDestination(cmd.OutOrStdout(), output)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	f, err := getFormatter(getOutputFormat())
	if err != nil {
		return err
	}

	session, err := openSession(commandContext(cmd), cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	d, err := session.Lookup(args[0])
	if err != nil {
		return err
	}

	output, err := f.FormatDetail(d)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return handleOutputDestination(cmd.OutOrStdout(), output)
}

// getFormatter returns the formatter for format honoring color and emoji
func getFormatter(format string) (formatter.Formatter, error) {
	return formatter.New(format, useColor(GetGlobalConfig()), !isEmojiDisabled())
}

// handleOutputDestination writes output to file or stdout
func handleOutputDestination(stdout io.Writer, output []byte) error {
	if outputFile == "" {
		_, err := stdout.Write(output)
		return err
	}

	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", outputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	// Create or truncate the file
	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}
	return nil
}
