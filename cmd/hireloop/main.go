package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/internal/interfaces/cli/migrate"
	"github.com/hireloop/hireloop/internal/interfaces/cli/server"
	"github.com/hireloop/hireloop/internal/shared/version"
)

//	@title						Hireloop API
//	@version					1.0
//	@description				Resume screening and recruiting analytics for multi-tenant hiring teams.
//	@BasePath					/
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "hireloop",
		Short: "Hireloop - resume screening and hiring analytics",
		Long:  `Hireloop screens job applications with an LLM, tracks candidates per job and bills tenants by plan.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Run: func(cmd *cobra.Command, args []string) {
				info := version.Get()
				fmt.Printf("hireloop %s (commit %s, built %s, %s)\n", info.Version, info.Commit, info.BuildTime, info.GoVersion)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
