package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zero-day-ai/typedenum/decl"
	"github.com/zero-day-ai/typedenum/enum"
)

func checkCmd(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a declaration file",
		Long: `Check loads every enum declared in FILE and populates it, reporting
empty, duplicate or mistyped keys and values. FILE may be a directory
containing enums.yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := decl.Load(args[0])
			if err != nil {
				return err
			}
			failed := check(f, logger())
			for _, s := range f.Enums {
				if err, ok := failed[s.Name]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", s.Name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", s.Name)
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d enums failed", len(failed), len(f.Enums))
			}
			return nil
		},
	}
}

// check defines f's enums in a private registry and populates each one. It
// returns the load error of every enum that failed, by name.
func check(f *decl.File, logger *slog.Logger) map[string]error {
	registry := enum.NewRegistry(enum.WithLogger(logger))
	failed := make(map[string]error)

	defined, err := f.Define(enum.WithRegistry(registry))
	if err != nil {
		// Validate already rejected duplicate names, so this is unexpected.
		for _, s := range f.Enums {
			failed[s.Name] = err
		}
		return failed
	}

	for _, e := range defined {
		if err := e.Load(); err != nil {
			failed[e.ID()] = err
			continue
		}
		logger.Debug("enum declaration valid", "type", e.ID(), "constants", len(e.Keys()))
	}
	return failed
}
