// Command feedback renders CV feedback reports from scorer evaluations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "feedback",
	Short:         "CV feedback report tool",
	Long:          "Turns a scorer evaluation of a CV into the verdict and recommendation report shown to candidates.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
