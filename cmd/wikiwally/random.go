package main

import (
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random [count]",
	Short: "Fetch one to ten random articles",
	Long:  "Without a count, shows one random article with its summary and a photo. With a count from 1 to 10, lists that many random articles.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	a, err := newApp(commandLogLevel)
	if err != nil {
		return err
	}
	defer a.close()

	var raw *string
	if len(args) == 1 {
		raw = &args[0]
	}
	return a.emit(cmd, a.service.Random(cmd.Context(), raw, requestedBy))
}
