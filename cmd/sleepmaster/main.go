package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sleepmaster/internal/bootstrap"
	"sleepmaster/internal/modules/tracker/domain"
	trackerdto "sleepmaster/internal/modules/tracker/dto"
	"sleepmaster/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "sleepmaster",
		Short:         "Local-first sleep tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir(), "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newSleepCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the sleepmaster terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newSleepCmd(dataDir *string) *cobra.Command {
	sleep := &cobra.Command{Use: "sleep", Short: "Sleep session commands"}

	sleep.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start tracking a sleep session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TrackerCLI.Start(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tracking started (%s) at %s\n", out.SessionID, out.StartedAt.Local().Format("15:04"))
			return nil
		},
	})

	sleep.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the current sleep session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TrackerCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			if !out.Stopped {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sleep session in progress")
				return nil
			}
			printCompleted(cmd, out.Session)
			return nil
		},
	})

	sleep.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Start tracking, or stop if already tracking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TrackerCLI.Toggle(context.Background())
			if err != nil {
				return err
			}
			if out.Started {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tracking started (%s)\n", out.Start.SessionID)
				return nil
			}
			printCompleted(cmd, out.Stop.Session)
			return nil
		},
	})

	sleep.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show tracking state and last night's summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			state, err := app.TrackerCLI.State(context.Background())
			if err != nil {
				return err
			}
			if state.Sleeping {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sleeping since %s (%s)\n", state.Current.StartedAt.Local().Format("Mon 15:04"), state.Current.SessionID)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "awake")
			}
			if state.HasLast {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "last night:")
				printCompleted(cmd, state.LastNight)
			}
			return nil
		},
	})

	return sleep
}

func printCompleted(cmd *cobra.Command, s trackerdto.SessionOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  duration    %s\n", domain.FormatDuration(s.DurationMin))
	_, _ = fmt.Fprintf(w, "  deep sleep  %s\n", domain.FormatDuration(s.DeepSleepMin))
	_, _ = fmt.Fprintf(w, "  light sleep %s\n", domain.FormatDuration(s.LightSleepMin))
	_, _ = fmt.Fprintf(w, "  awakenings  %d\n", s.Awakenings)
	_, _ = fmt.Fprintf(w, "  score       %d/100\n", s.Score)
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List tracked nights (last 90 days)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			sessions, err := app.TrackerCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sleep history")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tscore %d\t%d awakenings\n",
					s.StartedAt.Local().Format("2006-01-02"), domain.FormatDuration(s.DurationMin), s.Score, s.Awakenings)
			}
			return nil
		},
	}
}

func newStatsCmd(dataDir *string) *cobra.Command {
	var days int
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recent sleep",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.StatsCLI.Summary(context.Background(), days)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "last %d days: %d nights\n", out.Days, out.Nights)
			if out.Nights == 0 {
				return nil
			}
			_, _ = fmt.Fprintf(w, "  total sleep   %s\n", domain.FormatDuration(out.TotalSleepMin))
			_, _ = fmt.Fprintf(w, "  avg duration  %s\n", domain.FormatDuration(out.AvgDurationMin))
			_, _ = fmt.Fprintf(w, "  avg score     %d\n", out.AvgScore)
			_, _ = fmt.Fprintf(w, "  best score    %d\n", out.BestScore)
			_, _ = fmt.Fprintf(w, "  avg awakenings %.1f\n", out.AvgAwakenings)
			return nil
		},
	}
	stats.Flags().IntVar(&days, "days", 30, "window in days")
	return stats
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Sleep schedule preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SettingsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "bedtime     %s\n", out.Bedtime)
			_, _ = fmt.Fprintf(w, "wake time   %s\n", out.WakeTime)
			_, _ = fmt.Fprintf(w, "sleep goal  %dh\n", out.GoalHours)
			return nil
		},
	})

	var bedtime, wakeTime string
	var goalHours int
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SettingsCLI.Update(context.Background(), bedtime, wakeTime, goalHours)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "settings updated: bedtime %s, wake %s, goal %dh\n", out.Bedtime, out.WakeTime, out.GoalHours)
			return nil
		},
	}
	setCmd.Flags().StringVar(&bedtime, "bedtime", "", "suggested bedtime, e.g. \"11:00 PM\"")
	setCmd.Flags().StringVar(&wakeTime, "wake", "", "suggested wake time, e.g. \"7:00 AM\"")
	setCmd.Flags().IntVar(&goalHours, "goal", 0, "sleep goal in hours")
	settings.AddCommand(setCmd)

	return settings
}
