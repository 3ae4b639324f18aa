package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"starbarcode/internal/deps"
	"starbarcode/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the generator, placement helper, and directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := preflight.CheckSystemDeps(cfg)
			results := preflight.RunAll(cfg)
			results = append(results, preflight.CheckLock(cfg.LockPath()))

			rows := make([][]string, 0, len(statuses)+len(results))
			for _, s := range statuses {
				detail := s.Detail
				if s.Available {
					detail = s.Path
				}
				rows = append(rows, []string{s.Name, statusLabel(s.Available, s.Optional), detail})
			}
			failed := deps.AnyMissing(statuses)
			for _, r := range results {
				rows = append(rows, []string{r.Name, statusLabel(r.Passed, false), r.Detail})
				if !r.Passed {
					failed = true
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
			if failed {
				return preflight.ErrNotReady
			}
			fmt.Fprintln(out, "Ready")
			return nil
		},
	}
}

func statusLabel(ok, optional bool) string {
	switch {
	case ok:
		return "ok"
	case optional:
		return "optional"
	default:
		return "missing"
	}
}
