package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/csheth/convoy/internal/content"
	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/metrics"
	"github.com/csheth/convoy/internal/stats"
	"github.com/csheth/convoy/internal/submission"
	"github.com/csheth/convoy/internal/tui"
)

func (a *app) runTUI() error {
	model := tui.New(tui.Config{
		Stats:       a.client,
		Newsletter:  submission.NewsletterSender(a.client),
		Application: submission.ApplicationSender(a.client),
		Timeout:     a.cfg.RequestTimeout,
		Logger:      a.logger,
	})
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !a.cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the live community counters and launch targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			poller := stats.New(a.client, a.logger.Named("stats"))
			if err := poller.Activate(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Live stats unavailable: %v\n", err)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Metric", "Value")
			for _, metric := range metrics.Derive(poller.Snapshot(), content.FallbackMetrics()) {
				table.Append(metric.Label, metric.Value)
			}
			return table.Render()
		},
	}
}

// flagFor maps form fields to the flag that fills them.
var flagFor = map[string]string{
	forms.FieldName:         "name",
	forms.FieldEmail:        "email",
	forms.FieldRoleInterest: "role",
	forms.FieldExperience:   "experience",
	forms.FieldPortfolioURL: "portfolio",
	forms.FieldMessage:      "message",
}

func newSubscribeCommand(a *app) *cobra.Command {
	values := map[string]*string{}
	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Get Convoy launch updates by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.submit(cmd, forms.Newsletter, values)
		},
	}
	values[forms.FieldEmail] = cmd.Flags().String(flagFor[forms.FieldEmail], "", "address for launch updates (required)")
	values[forms.FieldName] = cmd.Flags().String(flagFor[forms.FieldName], "", "your name")
	return cmd
}

func newApplyCommand(a *app) *cobra.Command {
	values := map[string]*string{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply to join the Convoy build crew",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.submit(cmd, forms.Application, values)
		},
	}
	f := cmd.Flags()
	values[forms.FieldName] = f.String(flagFor[forms.FieldName], "", "your name (required)")
	values[forms.FieldEmail] = f.String(flagFor[forms.FieldEmail], "", "contact email (required)")
	values[forms.FieldRoleInterest] = f.String(flagFor[forms.FieldRoleInterest], "", "the role you are after (required)")
	values[forms.FieldExperience] = f.String(flagFor[forms.FieldExperience], "", "relevant experience")
	values[forms.FieldPortfolioURL] = f.String(flagFor[forms.FieldPortfolioURL], "", "portfolio or GitHub link")
	values[forms.FieldMessage] = f.String(flagFor[forms.FieldMessage], "", "why you want to build Convoy (required)")
	return cmd
}

// submit runs one blocking submission. Missing required fields are reported
// without contacting the service.
func (a *app) submit(cmd *cobra.Command, form forms.FormID, values map[string]*string) error {
	store := forms.NewStore()
	for field, value := range values {
		if err := store.Set(form, field, *value); err != nil {
			return err
		}
	}
	fields := store.Fields(form)
	if missing := forms.Missing(form, fields); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, field := range missing {
			names = append(names, "--"+flagFor[field])
		}
		return fmt.Errorf("missing required flags: %s", strings.Join(names, ", "))
	}

	ctrl := submission.New(submission.Config{
		Form:    form,
		Store:   store,
		Send:    submission.SenderFor(form, a.client),
		Logger:  a.logger,
		Timeout: a.cfg.RequestTimeout,
	})
	state, _ := ctrl.Submit(cmd.Context(), fields)
	if state.Status == submission.Failed {
		return errors.New(state.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), state.Message)
	return nil
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeout := "none"
			if a.cfg.RequestTimeout > 0 {
				timeout = a.cfg.RequestTimeout.String()
			}
			logFile := a.cfg.LogFile
			if logFile == "" {
				logFile = "(disabled)"
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Setting", "Value")
			table.Append("API base URL", a.cfg.APIBaseURL)
			table.Append("Request timeout", timeout)
			table.Append("Log file", logFile)
			table.Append("Debug", fmt.Sprintf("%v", a.cfg.Debug))
			table.Append("Alt screen", fmt.Sprintf("%v", !a.cfg.NoAltScreen))
			table.Append("Env file", a.envFile)
			return table.Render()
		},
	}
}
