package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"timearena/internal/bootstrap"
	progressdto "timearena/internal/modules/progress/dto"
	"timearena/internal/platform/config"
	apperrors "timearena/internal/platform/errors"
	"timearena/internal/platform/logging"
	"timearena/internal/ui/components"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "timearena",
		Short:         "Earn screen time by completing missions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", "", "directory holding .timearena (default $TIMEARENA_HOME or .)")

	root.AddCommand(newStatusCmd(&homePath))
	root.AddCommand(newWatchCmd(&homePath))
	root.AddCommand(newMissionCmd(&homePath))
	root.AddCommand(newPenaltyCmd(&homePath))
	root.AddCommand(newShopCmd(&homePath))
	root.AddCommand(newRulesCmd(&homePath))
	root.AddCommand(newHistoryCmd(&homePath))
	root.AddCommand(newResetDayCmd(&homePath))
	root.AddCommand(newThemeCmd(&homePath))
	root.AddCommand(newProfileCmd(&homePath))
	return root
}

// loadApp wires the app and runs the daily rollover, which every process
// start performs before anything else.
func loadApp(ctx context.Context, homePath string) (*bootstrap.App, error) {
	cfg, err := config.Load(homePath)
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel, os.Stderr)
	app, err := bootstrap.New(cfg, log)
	if err != nil {
		return nil, err
	}
	if _, err := app.ProgressCLI.Rollover(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func withApp(homePath *string, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := context.Background()
	app, err := loadApp(ctx, *homePath)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app)
}

func newStatusCmd(homePath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show earned minutes, level, streak and ban",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.ProgressCLI.Status(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), status)
				}
				printStatus(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the status snapshot as JSON")
	return cmd
}

func newWatchCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Full-screen status refreshing every second",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(homePath, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunWatch(app)
			})
		},
	}
}

func newMissionCmd(homePath *string) *cobra.Command {
	mission := &cobra.Command{Use: "mission", Short: "List and complete missions"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog missions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				missions, err := app.CatalogCLI.ListMissions(ctx)
				if err != nil {
					return err
				}
				for _, m := range missions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.Title, m.Reward)
				}
				return nil
			})
		},
	}

	var missionID, title, reward string
	completeCmd := &cobra.Command{
		Use:   "complete",
		Short: "Complete a mission and collect its reward",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if missionID == "" && strings.TrimSpace(title) == "" {
				return fmt.Errorf("either --id or --title is required")
			}
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				var (
					out progressdto.CompleteMissionOutput
					err error
				)
				if missionID != "" {
					out, err = app.ProgressCLI.CompleteMission(ctx, missionID)
				} else {
					out, err = app.ProgressCLI.CompleteFreeText(ctx, title, reward)
				}
				if errors.Is(err, apperrors.ErrBlocked) {
					return fmt.Errorf("reward blocked: a ban is active")
				}
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "✅ %s: +%d min, +%d XP\n", out.Title, out.MinutesAdded, out.XPAdded)
				printStatus(w, out.Status)
				return nil
			})
		},
	}
	completeCmd.Flags().StringVar(&missionID, "id", "", "catalog mission id")
	completeCmd.Flags().StringVar(&title, "title", "", "free-text mission title")
	completeCmd.Flags().StringVar(&reward, "reward", "", "free-text reward, e.g. \"+15 min\" or \"+20 XP\"")
	completeCmd.MarkFlagsMutuallyExclusive("id", "title")

	mission.AddCommand(listCmd, completeCmd)
	return mission
}

func newPenaltyCmd(homePath *string) *cobra.Command {
	penalty := &cobra.Command{Use: "penalty", Short: "List and apply penalties"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List penalties and special quests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				penalties, err := app.CatalogCLI.ListPenalties(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, p := range penalties {
					_, _ = fmt.Fprintf(w, "%s\tL%d\t%s\t%s\n", p.ID, p.Level, p.Name, p.Desc)
				}
				quests, err := app.CatalogCLI.ListQuests(ctx)
				if err != nil {
					return err
				}
				if len(quests) > 0 {
					_, _ = fmt.Fprintln(w, "\nspecial quests:")
				}
				for _, q := range quests {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", q.ID, q.Title, q.Desc)
				}
				return nil
			})
		},
	}

	applyCmd := &cobra.Command{
		Use:   "apply <id|name>",
		Short: "Apply a penalty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProgressCLI.ApplyPenalty(ctx, args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "⚠️ %s (L%d)", out.PenaltyName, out.Level)
				if out.MinutesDebited > 0 {
					_, _ = fmt.Fprintf(w, ": -%d min", out.MinutesDebited)
				}
				_, _ = fmt.Fprintln(w)
				printStatus(w, out.Status)
				return nil
			})
		},
	}

	penalty.AddCommand(listCmd, applyCmd)
	return penalty
}

func newShopCmd(homePath *string) *cobra.Command {
	shop := &cobra.Command{Use: "shop", Short: "Browse the reward shop"}
	shop.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shop items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.CatalogCLI.ListShop(ctx)
				if err != nil {
					return err
				}
				for _, item := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d min\t%s\t%s\n", item.ID, item.CostMinutes, item.Title, item.Desc)
				}
				return nil
			})
		},
	})
	return shop
}

func newRulesCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the arena rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				rules, err := app.CatalogCLI.Rules(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", rules.Title, strings.TrimRight(rules.Body, "\n"))
				return nil
			})
		},
	}
}

func newHistoryCmd(homePath *string) *cobra.Command {
	var limit int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent events, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				events, err := app.ProgressCLI.History(ctx, limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), events)
				}
				for _, e := range events {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", e.At.Format("2006-01-02 15:04:05"), e.Kind, e.Title, e.Details)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max events (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print events as JSON")
	return cmd
}

func newResetDayCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-day",
		Short: "Reset today's earned minutes to zero",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.ProgressCLI.ResetDay(ctx)
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
}

func newThemeCmd(homePath *string) *cobra.Command {
	theme := &cobra.Command{Use: "theme", Short: "Manage the stored theme"}
	theme.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				next, err := app.ProgressCLI.ToggleTheme(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", next)
				return nil
			})
		},
	})
	return theme
}

func newProfileCmd(homePath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Manage the player profile"}
	profile.AddCommand(&cobra.Command{
		Use:   "name <name>",
		Short: "Set the player name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(homePath, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.ProgressCLI.SetUserName(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", status.UserName)
				return nil
			})
		},
	})
	return profile
}

func printStatus(w io.Writer, s progressdto.StatusOutput) {
	_, _ = fmt.Fprintf(w, "%s · %s\n", s.UserName, s.Greeting)
	_, _ = fmt.Fprintf(w, "minutes %d/%d (%d%%) locked %d\n", s.MinutesEarned, s.MinutesMax, s.ProgressPercent, s.MinutesLocked)
	_, _ = fmt.Fprintf(w, "level %d · %d XP · streak %d\n", s.Level, s.XP, s.Streak)
	if s.Ban != nil {
		_, _ = fmt.Fprintf(w, "🔴 BAN L%d %s · reactivates in %s\n", s.Ban.Level, s.Ban.Name, components.FormatHMS(s.Ban.Remaining))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
