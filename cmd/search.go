package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/agent"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank candidates for a single query and exit",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ctx := context.Background()

		s := newSession(ctx, "search")
		defer s.close()

		if err := s.agent.Search(ctx, strings.Join(args, " ")); err != nil {
			s.logger.Error("search failed", zap.Error(err))
			fmt.Fprint(os.Stderr, agent.Message(err))
			s.close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
