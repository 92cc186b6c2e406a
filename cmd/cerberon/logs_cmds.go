package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) logsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Analyse log files (DATE HH:MM:SS SEVERITY message [duration])",
	}

	rank := &cobra.Command{
		Use:   "rank FILE",
		Short: "Order entries by time of day and by severity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := a.eng.RankLogs(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printYAML(cmd.OutOrStdout(), res)
		},
	}

	slow := &cobra.Command{
		Use:   "slow FILE",
		Short: "Flag the slowest tenth of entries carrying a response time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := a.eng.FlagSlowLogs(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printYAML(cmd.OutOrStdout(), res)
		},
	}

	cmd.AddCommand(rank, slow)
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "search FILE",
		Short: "Compare binary and linear search over a word list (one per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readLines(args[0])
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), a.eng.CompareSearch(words, target))
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "admin", "word to look for")
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
