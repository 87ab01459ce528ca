package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goal-server/internal/rng"
)

func newRngCmd() *cobra.Command {
	var lo, hi int

	cmd := &cobra.Command{
		Use:   "rng",
		Short: "Print a random integer between --min and --max (inclusive)",
		Long: `
Print a random integer between --min and --max, both inclusive.
Bounds that are not given as flags are read from stdin.

Examples:
  goal-server rng --min 1 --max 6
  echo "1 100" | goal-server rng`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			var err error
			if !cmd.Flags().Changed("min") {
				if lo, err = promptInt(in, out, "Enter the minimum number: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("max") {
				if hi, err = promptInt(in, out, "Enter the maximum number: "); err != nil {
					return err
				}
			}

			n, err := rng.Intn(lo, hi)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, n)
			return nil
		},
	}
	cmd.Flags().IntVar(&lo, "min", 0, "lower bound")
	cmd.Flags().IntVar(&hi, "max", 0, "upper bound")
	return cmd
}

// promptInt reads one whitespace-separated integer from in.
func promptInt(in *bufio.Reader, out io.Writer, prompt string) (int, error) {
	fmt.Fprint(out, prompt)

	var word string
	if _, err := fmt.Fscan(in, &word); err != nil {
		return 0, fmt.Errorf("read number: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(word))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", word, err)
	}
	return n, nil
}
