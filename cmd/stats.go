package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.StatsRepo()
		ops, err := repo.ByOperation(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		sessions, err := repo.RecentSessions(cmd.Context(), recent)
		if err != nil {
			return fmt.Errorf("load recent sessions: %w", err)
		}

		return renderStats(cmd.OutOrStdout(), ops, sessions)
	},
}

func init() {
	statsCmd.Flags().Int("recent", 10, "Number of recent quizzes to list")
}

func renderStats(w io.Writer, ops []store.OperationStats, sessions []store.SessionRecord) error {
	if len(ops) == 0 {
		_, err := fmt.Fprintln(w, "No quizzes yet. Run `mathdrill play` to start.")
		return err
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)

	byOp := newTable().Headers("Operation", "Quizzes", "Answered", "Accuracy", "Level ups", "Best level", "Best mastery")
	for _, o := range ops {
		byOp.Row(
			opLabel(o.Operation),
			strconv.Itoa(o.Sessions),
			strconv.Itoa(o.Answered),
			fmt.Sprintf("%.0f%%", o.Accuracy()*100),
			strconv.Itoa(o.LevelUps),
			strconv.Itoa(o.HighestLevel),
			durationLabel(o.BestMastery),
		)
	}

	recent := newTable().Headers("Started", "Operation", "Mode", "Levels", "Correct", "Mastery")
	for _, s := range sessions {
		recent.Row(
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			opLabel(s.Operation),
			s.Mode,
			fmt.Sprintf("%d → %d", s.StartLevel, s.EndLevel),
			fmt.Sprintf("%d/%d", s.Correct, s.Answered),
			durationLabel(s.MasteryTime),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n",
		heading.Render("By operation"), byOp.String(),
		heading.Render("Recent quizzes"), recent.String())
	return err
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func opLabel(name string) string {
	op := problemgen.Operation(name)
	if !op.Valid() {
		return name
	}
	return op.Symbol() + " " + name
}

func durationLabel(d *time.Duration) string {
	if d == nil {
		return "-"
	}
	return session.FormatClock(*d)
}
