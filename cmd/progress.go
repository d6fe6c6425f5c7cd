package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Export or import learner progress as JSON",
}

var progressExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write progress to a file, or stdout when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := newSessionService(s).LoadProgress(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			w = f
		}
		return p.Encode(w)
	},
}

var progressImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace progress with the contents of a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		p, err := progress.Decode(f)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := newSessionService(s).SaveProgress(cmd.Context(), p); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d assessments, %d lessons, %d points.\n",
			len(p.Assessments), len(p.Lessons.Completed), p.Points)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressExportCmd)
	progressCmd.AddCommand(progressImportCmd)
}
