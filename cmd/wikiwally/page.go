package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page <query...>",
	Short: "Fetch the article best matching a query",
	Long:  "Searches Wikipedia for the query and shows the top result with a two-sentence summary and an image. Ambiguous queries list the possible entries instead.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	a, err := newApp(commandLogLevel)
	if err != nil {
		return err
	}
	defer a.close()

	query := strings.Join(args, " ")
	return a.emit(cmd, a.service.Page(cmd.Context(), query, requestedBy))
}
