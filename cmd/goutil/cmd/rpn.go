package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schotanus/goutil/pkg/rpn"
)

var rpnCmd = &cobra.Command{
	Use:   "rpn [expression]",
	Short: "Evaluate reverse Polish notation expressions",
	Long: `Evaluates a reverse Polish notation expression.

With arguments the expression is evaluated once and the result printed.
Without arguments an interactive loop reads expressions from stdin; the
stack carries over between lines, "ac" clears it and "q" quits.`,
	Example: `  goutil rpn 3 4 +
  goutil rpn 90 radians sin
  goutil rpn`,
	RunE: runRPN,
}

func init() {
	rootCmd.AddCommand(rpnCmd)
}

func runRPN(cmd *cobra.Command, args []string) error {
	calculator := rpn.New()

	if len(args) > 0 {
		result, err := calculator.Evaluate(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), `Enter expressions, "ac" to clear, "q" to quit.`)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		result, err := calculator.Evaluate(line)
		if err != nil {
			log.Warn("evaluation failed", "expression", line, "error", err)
			fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
	}
	return scanner.Err()
}
