package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"focusctl/internal/bootstrap"
	focusdto "focusctl/internal/modules/focus/dto"
	"focusctl/internal/platform/config"
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
		Use:           "focusctl",
		Short:         "Minimalist launcher core: focus modes, daily intentions, app shelf",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.focusctl)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newModeCmd(&dataDir))
	root.AddCommand(newIntentionCmd(&dataDir))
	root.AddCommand(newAppsCmd(&dataDir))
	root.AddCommand(newGrayscaleCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newDeviceCmd(&dataDir))
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
		Short: "Run the focusctl terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newModeCmd(dataDir *string) *cobra.Command {
	mode := &cobra.Command{Use: "mode", Short: "Focus mode commands"}

	mode.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Seed the preset focus modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FocusCLI.Init(context.Background())
			if err != nil {
				return err
			}
			if out.Seeded {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d preset modes\n", out.Modes)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "catalog already has %d modes\n", out.Modes)
			return nil
		},
	})

	mode.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List focus modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			modes, err := app.FocusCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, m := range modes {
				marker := " "
				if m.IsActive {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\t%s\tallowed=%d grayscale=%t\n",
					marker, m.Icon, m.ID, m.Name, len(m.AllowedApps), m.EnableGrayscale)
			}
			return nil
		},
	})

	mode.AddCommand(&cobra.Command{
		Use:   "activate <mode-id>",
		Short: "Activate a focus mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FocusCLI.Activate(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "activated %s: blocking %d apps, grayscale=%t\n",
				out.Name, len(out.BlockedApps), out.GrayscaleEnabled)
			return nil
		},
	})

	mode.AddCommand(&cobra.Command{
		Use:   "deactivate",
		Short: "Deactivate the active focus mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FocusCLI.Deactivate(context.Background())
			if err != nil {
				return err
			}
			if !out.WasActive {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no mode was active")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deactivated %s\n", out.ModeID)
			return nil
		},
	})

	var allowed []string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a custom focus mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FocusCLI.Create(context.Background(), args[0], allowed)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) with %d allowed apps\n", out.Name, out.ID, len(out.AllowedApps))
			return nil
		},
	}
	createCmd.Flags().StringSliceVar(&allowed, "allow", nil, "package names to allow")
	mode.AddCommand(createCmd)

	mode.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show enforcement status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FocusCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if out.Repair != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reconciled: %s\n", out.Repair)
			}
			if out.ActiveModeID == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "active: none")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "active: %s (%s)\n", out.ActiveModeName, out.ActiveModeID)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "permission: %t\ngrayscale: %t\nblocked: %d\n",
				out.PermissionGranted, out.GrayscaleEnabled, len(out.BlockedApps))
			return nil
		},
	})

	mode.AddCommand(&cobra.Command{
		Use:   "permission",
		Short: "Request enforcement permission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.FocusCLI.RequestPermission(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "permission requested; finish granting it on the device")
			return nil
		},
	})

	return mode
}

func newIntentionCmd(dataDir *string) *cobra.Command {
	intention := &cobra.Command{Use: "intention", Short: "Daily intention commands"}

	intention.AddCommand(&cobra.Command{
		Use:   "set <text>",
		Short: "Declare today's intention",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.IntentionCLI.Declare(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "intention for %s: %s\n", out.Date, out.Text)
			return nil
		},
	})

	intention.AddCommand(&cobra.Command{
		Use:   "checkin <complete|partial|missed>",
		Short: "Check in on today's intention",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.IntentionCLI.CheckIn(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !out.Updated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no intention declared today")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (streak %d)\n", out.Intention.Status, out.Intention.Text, out.Streak)
			return nil
		},
	})

	intention.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Show today's intention",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.IntentionCLI.Today(context.Background())
			if err != nil {
				return err
			}
			if !out.Declared {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no intention declared today")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", out.Intention.Status, out.Intention.Text)
			return nil
		},
	})

	intention.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show the intention log, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			history, err := app.IntentionCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no intentions yet")
				return nil
			}
			for _, item := range history {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-11s\t%s\n", item.Date, item.Status, item.Text)
			}
			return nil
		},
	})

	intention.AddCommand(&cobra.Command{
		Use:   "streak",
		Short: "Show the current completion streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.IntentionCLI.Streak(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d day(s)\n", out.Days)
			return nil
		},
	})

	intention.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show intention totals from the history index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.IntentionCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total=%d complete=%d partial=%d missed=%d in_progress=%d rate=%.0f%%\n",
				out.Total, out.Complete, out.Partial, out.Missed, out.InProgress, out.CompletionRate*100)
			return nil
		},
	})

	intention.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the history index from the log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.IntentionCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "history index rebuilt")
			return nil
		},
	})

	return intention
}

func newAppsCmd(dataDir *string) *cobra.Command {
	apps := &cobra.Command{Use: "apps", Short: "Installed app commands"}

	apps.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed apps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			list, err := app.AppsCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, item := range list {
				marker := " "
				if item.Favorite {
					marker = "★"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\topens=%d\n", marker, item.AppName, item.PackageName, item.Opens)
			}
			return nil
		},
	})

	apps.AddCommand(&cobra.Command{
		Use:   "favorite <package>",
		Short: "Toggle a favorite (max 5)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.AppsCLI.ToggleFavorite(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !out.Changed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "favorites unchanged (already 5 pinned)")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "favorites: %s\n", strings.Join(out.Favorites, ", "))
			return nil
		},
	})

	apps.AddCommand(&cobra.Command{
		Use:   "launch <package>",
		Short: "Launch an app and record the open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.AppsCLI.Launch(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "launched %s (opens=%d)\n", out.PackageName, out.Opens)
			return nil
		},
	})

	return apps
}

func newGrayscaleCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "grayscale",
		Short: "Toggle the display grayscale switch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			enabled, err := app.FocusCLI.ToggleGrayscale(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "grayscale: %t\n", enabled)
			return nil
		},
	}
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Launcher settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FocusCLI.Settings(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"grayscale: %t\nnotifications: %t\nevening check-in: %s\nmorning prompt: %s\nbreak-glass phrase: %q\nvibration: %t\n",
				out.GrayscaleEnabled, out.NotificationsEnabled, out.EveningCheckInTime,
				out.MorningPromptTime, out.BreakGlassPhrase, out.VibrationEnabled)
			return nil
		},
	})

	var breakGlass, evening, morning string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input := focusdto.UpdateSettingsInput{}
			if cmd.Flags().Changed("break-glass") {
				input.BreakGlassPhrase = &breakGlass
			}
			if cmd.Flags().Changed("evening-checkin") {
				input.EveningCheckInTime = &evening
			}
			if cmd.Flags().Changed("morning-prompt") {
				input.MorningPromptTime = &morning
			}
			out, err := app.FocusCLI.UpdateSettings(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "settings updated (evening %s, morning %s)\n",
				out.EveningCheckInTime, out.MorningPromptTime)
			return nil
		},
	}
	setCmd.Flags().StringVar(&breakGlass, "break-glass", "", "break-glass phrase")
	setCmd.Flags().StringVar(&evening, "evening-checkin", "", "evening check-in time (HH:MM)")
	setCmd.Flags().StringVar(&morning, "morning-prompt", "", "morning prompt time (HH:MM)")
	settings.AddCommand(setCmd)

	return settings
}

func newDeviceCmd(dataDir *string) *cobra.Command {
	device := &cobra.Command{Use: "device", Short: "Device plugin commands"}

	device.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show device plugin status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.DeviceCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s %s)\npermission: %t\ngrayscale: %t\nblocked apps: %d\n",
				out.Info.Name, out.Info.Platform, out.Info.Version,
				out.PermissionGranted, out.GrayscaleEnabled, len(out.BlockedApps))
			return nil
		},
	})

	return device
}
