package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fadilmartias/cv-feedback/internal/dto"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/fadilmartias/cv-feedback/internal/render"
	"github.com/fadilmartias/cv-feedback/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the feedback report for an evaluation JSON file",
	Long:  "Reads a scorer evaluation (score, label, isExperiencedProfile, subscores or rb_subscores) and prints the synthesized report as text, html or json.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderFormat     string
	renderPlain      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to evaluation JSON file, - for stdin (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Write the report to this file instead of stdout")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "text", "Output format: text, html or json")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "Disable terminal colors in text output")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(renderFormat)
	if format != "text" && format != "html" && format != "json" {
		return fmt.Errorf("unknown format %q, use text, html or json", renderFormat)
	}

	raw, err := readInput(cmd, renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read evaluation: %w", err)
	}

	var req dto.EvaluationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("failed to parse evaluation JSON: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(req); err != nil {
		if formErr := util.FormErrorFromValidation(err); formErr != nil {
			return fmt.Errorf("invalid evaluation: %v", formErr.Errors)
		}
		return fmt.Errorf("invalid evaluation: %w", err)
	}

	report := feedback.Synthesize(req.Input())

	var out string
	switch format {
	case "html":
		out = render.HTML(report.Fragments)
	case "json":
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		out = string(b) + "\n"
	default:
		var styles render.Styles
		if !renderPlain && renderOutputFile == "" {
			styles = render.DefaultStyles()
		}
		out = render.Text(report.Fragments, styles)
	}

	if renderOutputFile == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(renderOutputFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", renderOutputFile)
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
