package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schotanus/goutil/pkg/roman"
)

var romanCmd = &cobra.Command{
	Use:   "roman <number>...",
	Short: "Convert between Arabic and Roman numbers",
	Long: `Converts each argument between Arabic and Roman numbers.

Arabic arguments (0 to 3999) are converted to Roman, everything else is
read as a Roman number and converted to Arabic. Malformed Roman numbers
that still add up, like IIII, get a suggestion for the proper spelling.`,
	Example: `  goutil roman 1984
  goutil roman MCMLXXXIV
  goutil roman 42 IIII xiv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoman,
}

func init() {
	rootCmd.AddCommand(romanCmd)
}

func runRoman(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if number, err := strconv.Atoi(arg); err == nil {
			converted, err := roman.ToRoman(number)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d = %s\n", number, converted)
			continue
		}

		numeral := strings.ToUpper(arg)
		number, err := roman.ToArabic(numeral)
		if err != nil {
			log.Error("not a Roman number", "input", arg, "error", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", numeral, number)

		if !roman.IsValid(numeral) {
			if proper, err := roman.ToRoman(number); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  note: %s is not well formed, did you mean %s?\n", numeral, proper)
			}
		}
	}
	return nil
}
