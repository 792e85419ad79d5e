package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-rodrigues/cronista"
	"github.com/b-rodrigues/cronista/diff"
	"github.com/b-rodrigues/cronista/internal/ops"
	"github.com/b-rodrigues/cronista/internal/trail"
)

var (
	runInput    string
	runStrict   int
	runDiffMode string
	runOutput   string
	runAudit    bool
	runInspect  bool
)

// runCmd records and chains named operations:
//
//	cronista run --input 16 sqrt exp mean
var runCmd = &cobra.Command{
	Use:   "run <op> [op...]",
	Short: "Record and chain named operations",
	Long: `Run wraps each named operation in a recorder and chains them left to
right: the output of one step feeds the next, every step appends a log
entry, and a failing step short-circuits the rest without aborting the
command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "initial input value (number or text)")
	runCmd.Flags().IntVar(&runStrict, "strict", 0, "strictness level 1-3 (default from config)")
	runCmd.Flags().StringVar(&runDiffMode, "diff", "", "diff mode: none, summary or full (default from config)")
	runCmd.Flags().StringVar(&runOutput, "output", "plain", "output format: plain, table or json")
	runCmd.Flags().BoolVar(&runAudit, "audit", false, "append this run to the audit trail")
	runCmd.Flags().BoolVar(&runInspect, "inspect", false, "record a type inspector for each step")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	reg := ops.NewRegistry()
	ops.RegisterAll(reg)

	strict := cronista.Strictness(cfg.Strict)
	if runStrict != 0 {
		strict = cronista.Strictness(runStrict)
	}

	modeName := cfg.Diff
	if runDiffMode != "" {
		modeName = runDiffMode
	}
	mode, err := diff.ParseMode(modeName)
	if err != nil {
		return err
	}

	input := parseInput(runInput)
	log.Debug().
		Strs("ops", args).
		Str("input", fmt.Sprint(input)).
		Stringer("strict", strict).
		Stringer("diff", mode).
		Msg("recording pipeline")

	c, err := executePipeline(reg, args, input, strict, mode, runInspect)
	if err != nil {
		return err
	}

	if err := renderChronicle(cmd.OutOrStdout(), c, runOutput); err != nil {
		return err
	}

	if runAudit {
		appendTrail(c)
	}
	return nil
}

// executePipeline wraps each named op in a recorder and binds them in
// order over the input value.
func executePipeline(reg *ops.Registry, names []string, input any, strict cronista.Strictness, mode diff.Mode, inspect bool) (cronista.Chronicle[any], error) {
	steps := make([]cronista.Step[any, any], 0, len(names))
	for _, name := range names {
		op, err := reg.Lookup(name)
		if err != nil {
			return cronista.Chronicle[any]{}, err
		}

		opts := []cronista.Option{
			cronista.WithName(op.Name()),
			cronista.WithStrictness(strict),
		}
		if mode != diff.ModeNone {
			opts = append(opts, cronista.WithDiff(mode))
		}
		if inspect {
			opts = append(opts, cronista.WithInspector(typeInspector))
		}

		step, err := cronista.Record(op.Apply, opts...)
		if err != nil {
			return cronista.Chronicle[any]{}, err
		}
		steps = append(steps, step)
	}

	c := steps[0].Call(input)
	for _, step := range steps[1:] {
		c = cronista.Bind(c, step)
	}
	return c, nil
}

// typeInspector is the builtin inspector behind --inspect.
func typeInspector(v any) (any, error) {
	return fmt.Sprintf("%T (%d chars)", v, len(fmt.Sprint(v))), nil
}

// parseInput interprets the --input flag: a number if it parses as
// one, text otherwise.
func parseInput(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func renderChronicle(w io.Writer, c cronista.Chronicle[any], format string) error {
	switch format {
	case "plain":
		fmt.Fprint(w, c.String())
		fmt.Fprintln(w)
		for _, line := range cronista.ReadLog(c) {
			fmt.Fprintln(w, line)
		}
		return nil

	case "table":
		table := tablewriter.NewWriter(w)
		table.Header("Step", "Outcome", "Function", "Message", "Run Time", "Inspector", "Diff")
		for _, e := range c.Log() {
			runTime := "-"
			if e.Executed() {
				runTime = fmt.Sprintf("%.3fs", e.RunTime.Seconds())
			}
			inspector := ""
			if e.Inspector != nil {
				inspector = fmt.Sprint(e.Inspector)
			}
			diffCol := ""
			if e.Diff != nil {
				diffCol = e.Diff.Summary()
			}
			table.Append(
				strconv.Itoa(e.Step),
				e.Outcome.String(),
				e.Function,
				e.Message,
				runTime,
				inspector,
				diffCol,
			)
		}
		table.Render()
		return nil

	case "json":
		value, _ := cronista.Unveil(c, "value")
		out := struct {
			OK    bool             `json:"ok"`
			Value any              `json:"value"`
			Log   []cronista.Entry `json:"log"`
		}{
			OK:    c.IsOK(),
			Value: value,
			Log:   c.Log(),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil

	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// appendTrail exports the run to the audit trail. Best-effort: a trail
// problem is reported but does not fail the run.
func appendTrail(c cronista.Chronicle[any]) {
	logger, err := trail.NewLogger(cfg.Audit.Path)
	if err != nil {
		log.Warn().Err(err).Msg("audit trail unavailable")
		return
	}
	runID := uuid.NewString()
	if err := logger.Append(runID, c.Log()); err != nil {
		log.Warn().Err(err).Msg("audit trail write failed")
		return
	}
	log.Info().Str("run_id", runID).Str("path", logger.Path()).Msg("run exported to audit trail")
}
