package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotank",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gotank v%s\n", version.Version)
		fmt.Println("API 650 Storage Tank Calculation Tool")
		fmt.Printf("Based on %s (Welded Tanks for Oil Storage)\n", version.Code)
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
