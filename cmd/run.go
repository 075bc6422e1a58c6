package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/agent"
)

const banner = `
HR AGENT

Commands:
  find <skills> in <city> with <min>-<max> years available this month
  save #1 #2 as "<list>"
  draft email for "<list>" job "<title>"
  change subject to "<subject>"
  analytics
  quit
`

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive recruiter session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the main command for the cli.
func run() {
	ctx := context.Background()

	s := newSession(ctx, "run")
	defer s.close()

	fmt.Print(banner)

	prompt := promptui.Prompt{
		Label: ">",
	}

	for {
		line, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Goodbye!")
				return
			}
			s.logger.Error("reading a command", zap.Error(err))
			return
		}

		err = s.agent.Handle(ctx, line)
		switch {
		case err == nil:
		case errors.Is(err, agent.ErrQuit):
			fmt.Println("Goodbye!")
			return
		default:
			s.logger.Debug("command failed", zap.Error(err))
			fmt.Print(agent.Message(err))
		}
	}
}
