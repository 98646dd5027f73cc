package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/roster"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/session"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "teamctl",
		Short:         "Split a futsal roster into balanced teams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBalanceCmd(), newParseCmd())
	return root
}

func newBalanceCmd() *cobra.Command {
	var (
		file    string
		teams   int
		seed    uint64
		details bool
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance a roster and print the teams",
		Long: `Reads a numbered roster ("1. Alice" per line) or a YAML list of
participants and prints the teams the way the web app exports them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			participants, err := loadRoster(file)
			if err != nil {
				return err
			}

			var opts []balancer.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, balancer.WithSeed(seed))
			}
			teamsOut, err := balancer.New(opts...).Balance(participants, teams)
			if err != nil {
				return fmt.Errorf("balance %s: %w", file, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, roster.Format(teamsOut))
			if details {
				fmt.Fprintln(out)
				writeDetails(cmd, balancer.Summarize(teamsOut))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "roster file (.txt or .yaml)")
	cmd.Flags().IntVarP(&teams, "teams", "t", session.DefaultTeamCount, "number of teams")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible shuffle")
	cmd.Flags().BoolVar(&details, "details", false, "print the average rating of every team")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newParseCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the participants found in a roster file as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			participants, err := loadRoster(file)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rosterFile{Participants: participants}); err != nil {
				return fmt.Errorf("encode roster: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "roster file (.txt or .yaml)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func writeDetails(cmd *cobra.Command, stats []models.TeamStats) {
	out := cmd.OutOrStdout()
	for _, s := range stats {
		if s.AllNeutral {
			fmt.Fprintf(out, "Team %d: %d players, all neutral\n", s.Index, s.Size)
			continue
		}
		fmt.Fprintf(out, "Team %d: %d players, average %.2f\n", s.Index, s.Size, s.AverageRating)
	}
}

// rosterFile is the YAML layout of a roster. A bare list of participants is
// accepted as well.
type rosterFile struct {
	Participants []models.Participant `yaml:"participants"`
}

// loadRoster reads participants from YAML (.yaml, .yml) or numbered text
func loadRoster(path string) ([]models.Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return roster.Parse(string(data)), nil
	}
}

func parseYAML(data []byte) ([]models.Participant, error) {
	var list []models.Participant
	if err := yaml.Unmarshal(data, &list); err != nil {
		var doc rosterFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse roster yaml: %w", err)
		}
		list = doc.Participants
	}

	participants := make([]models.Participant, 0, len(list))
	for _, p := range list {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if strings.TrimSpace(string(p.Rating)) == "" {
			p.Rating = models.NeutralRating
		}
		participants = append(participants, p)
	}
	return participants, nil
}
