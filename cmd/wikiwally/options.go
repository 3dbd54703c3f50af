package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options <query...>",
	Short: "List article candidates for a query",
	Long:  "Shows up to twenty search suggestions for the query. Useful when page does not find the article you are looking for.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	a, err := newApp(commandLogLevel)
	if err != nil {
		return err
	}
	defer a.close()

	return a.emit(cmd, a.service.Options(cmd.Context(), strings.Join(args, " "), requestedBy))
}
