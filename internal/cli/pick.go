package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Siddiq2772/scapper-with-ui/internal/navigation"
	"github.com/Siddiq2772/scapper-with-ui/internal/projection"
)

// chooseFunc asks the user to pick one of labels and returns its index
type chooseFunc func(title string, labels []string) (int, error)

// choose is replaced in tests
var choose chooseFunc = huhChoose

func newPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a problem statement with guided prompts",
		Long: `Walk the hierarchy with a prompt per level, then print the chosen
problem statement in the selected output format.

Examples:
  psbrowse pick
  psbrowse pick -o markdown > problem.md`,
		Args: cobra.NoArgs,
		RunE: runPick,
	}
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	f, err := getFormatter(getOutputFormat())
	if err != nil {
		return err
	}

	session, err := openSession(commandContext(cmd), cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	for {
		snap := session.Snapshot()
		items := snap.Result.Items
		if len(items) == 0 {
			return errors.New(snap.Result.Empty)
		}

		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = pickLabel(item)
		}

		index, err := choose(pickTitle(snap.State), labels)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(items) {
			return fmt.Errorf("invalid choice %d", index)
		}

		d, opened := session.Open(items[index])
		if !opened {
			continue
		}

		output, err := f.FormatDetail(d)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(output)
		return err
	}
}

func pickTitle(s navigation.State) string {
	switch s.View() {
	case navigation.Themes:
		return "Choose a theme"
	case navigation.Organizations:
		return "Choose an organization"
	case navigation.Problems:
		return "Choose a problem statement"
	default:
		return "Choose a category"
	}
}

func pickLabel(item projection.Item) string {
	if item.Kind == projection.KindProblem && item.Record != nil {
		return fmt.Sprintf("%s (#%s)", item.Label, item.Record.ID)
	}
	return item.Label
}

// huhChoose runs a single select prompt
func huhChoose(title string, labels []string) (int, error) {
	options := make([]huh.Option[int], len(labels))
	for i, label := range labels {
		options[i] = huh.NewOption(label, i)
	}

	var index int
	err := huh.NewSelect[int]().
		Title(title).
		Options(options...).
		Value(&index).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, errors.New("selection cancelled")
		}
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return index, nil
}
