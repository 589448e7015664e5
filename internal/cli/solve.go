package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanlayout/pkg/errors"
	"github.com/matzehuels/spanlayout/pkg/pipeline"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

type solveOpts struct {
	exprs   []string
	json    bool
	noCache bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve a system of constraints",
		Long: `Solve reads one constraint per line, such as "x + y = 10", and reports
each unknown as solved, underdetermined or inconsistent. Lines starting with
'#' are comments. Constraints may also be given with -e.`,
		Example: `  spanlayout solve system.txt
  spanlayout solve -e "x + y = 1" -e "x - y = 3"
  echo "2 * a = 7" | spanlayout solve -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := opts.exprs
			if len(args) == 1 {
				fromFile, err := readConstraints(args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				lines = append(fromFile, lines...)
			}
			if len(lines) == 0 {
				return fmt.Errorf("no constraints: pass a file, '-' for stdin, or -e")
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), lines, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.exprs, "expr", "e", nil, "constraint to solve (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the solution as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// readConstraints returns the lines of path, or of stdin for "-".
func readConstraints(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		if err := errors.ValidatePath(path); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "constraint file not found")
		}
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, lines []string, opts solveOpts) error {
	logger := loggerFromContext(ctx)
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Solve(ctx, pipeline.Options{Constraints: lines})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d constraints", countConstraints(lines)))

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Solution)
	}

	fmt.Fprintln(w, solutionTable(res.Solution))
	printSolveSummary(res.Kind, res.Solution, res.CacheHit)
	return nil
}

func countConstraints(lines []string) int {
	n := 0
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" && !strings.HasPrefix(t, "#") {
			n++
		}
	}
	return n
}

func printSolveSummary(kind string, sol solver.Solution, cached bool) {
	parts := []string{
		kind + " system",
		fmt.Sprintf("%d solved", len(sol.Assignments)),
		fmt.Sprintf("%d underdetermined", len(sol.Underdetermined)),
		fmt.Sprintf("%d inconsistent", len(sol.Inconsistencies)),
	}
	printStats(parts, cached)
	switch {
	case sol.IsInconsistent():
		printWarning("The system is inconsistent")
		printNextStep("See which constraints conflict", appName+" graph --format svg FILE")
	case !sol.IsSolved():
		printWarning("The system is underdetermined")
	default:
		printSuccess("Every unknown is solved")
	}
}
