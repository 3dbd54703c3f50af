package main

import (
	"github.com/spf13/cobra"
)

// helpCmd replaces cobra's help command. Bare "help" shows the bot's
// command listing; "help <command>" still shows cobra usage.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help page for WikiWally Bot",
	RunE:  runHelp,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		target, _, err := cmd.Root().Find(args)
		if err != nil {
			return err
		}
		return target.Help()
	}

	a, err := newApp(commandLogLevel)
	if err != nil {
		return err
	}
	defer a.close()

	return a.emit(cmd, a.service.Help(requestedBy))
}
