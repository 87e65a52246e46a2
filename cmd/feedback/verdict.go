package main

import (
	"fmt"

	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/spf13/cobra"
)

var verdictCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Classify a score without building a full report",
	RunE:  runVerdict,
}

var (
	verdictScore       float64
	verdictLabel       string
	verdictExperienced bool
)

func init() {
	verdictCmd.Flags().Float64Var(&verdictScore, "score", 0, "Final score in [0,100] (required)")
	verdictCmd.Flags().StringVar(&verdictLabel, "label", feedback.LabelGood, "Label assigned by the scorer")
	verdictCmd.Flags().BoolVar(&verdictExperienced, "experienced", false, "Evaluate against the experienced profile cutoff")

	if err := verdictCmd.MarkFlagRequired("score"); err != nil {
		panic(fmt.Sprintf("failed to mark score flag as required: %v", err))
	}

	rootCmd.AddCommand(verdictCmd)
}

func runVerdict(cmd *cobra.Command, _ []string) error {
	if verdictScore < 0 || verdictScore > 100 {
		return fmt.Errorf("score must be between 0 and 100, got %v", verdictScore)
	}

	verdict := feedback.ClassifyVerdict(verdictScore, verdictLabel)
	approval := feedback.ApprovalFor(verdictScore, verdictExperienced)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "verdict:  %s\n", verdict)
	fmt.Fprintf(out, "cutoff:   %.0f\n", approval.Cutoff)
	fmt.Fprintf(out, "approved: %t\n", approval.Approved)
	fmt.Fprintf(out, "track:    %s\n", feedback.TrackFor(approval))
	return nil
}
