package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/agent"
)

var analyticsCmd = &cobra.Command{
	Use:     "analytics",
	Aliases: []string{"stats"},
	Short:   "Print the pipeline by stage and the top skills",
	Run: func(_ *cobra.Command, _ []string) {
		s := newSession(context.Background(), "analytics")
		defer s.close()

		if err := s.agent.Analytics(); err != nil {
			s.logger.Error("analytics failed", zap.Error(err))
			fmt.Fprint(os.Stderr, agent.Message(err))
			s.close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}
