package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"mybuddy/mybuddy/config"
	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/utils/color"
	"mybuddy/mybuddy/utils/jsonutils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type actionRow struct {
	Description string `json:"description" yaml:"description"`
	DueDate     string `json:"due_date" yaml:"due_date"`
	NoteTitle   string `json:"note_title" yaml:"note_title"`
}

type reminderRow struct {
	Type        string `json:"type" yaml:"type"`
	ContactName string `json:"contact_name" yaml:"contact_name"`
	Message     string `json:"message" yaml:"message"`
	DueDate     string `json:"due_date" yaml:"due_date"`
}

type remindReport struct {
	Actions   []actionRow   `json:"actions" yaml:"actions"`
	Reminders []reminderRow `json:"reminders" yaml:"reminders"`
}

func newRemindCmd(cfg *config.Config) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show pending action items and call/follow-up reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewDatabase(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			report, err := loadReport(cmd.Context(), db)
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or yaml")
	return cmd
}

func loadReport(ctx context.Context, db *database.Database) (remindReport, error) {
	report := remindReport{Actions: []actionRow{}, Reminders: []reminderRow{}}

	actions, err := controllers.NewActionsController(dao.NewActionItemDAO(db.DB)).ListPending(ctx)
	if err != nil {
		return report, err
	}
	for _, a := range actions {
		report.Actions = append(report.Actions, actionRow{Description: a.Description, DueDate: a.DueDate, NoteTitle: a.NoteTitle})
	}

	reminders, err := controllers.NewRemindersController(dao.NewReminderDAO(db.DB)).ListPending(ctx)
	if err != nil {
		return report, err
	}
	for _, r := range reminders {
		report.Reminders = append(report.Reminders, reminderRow{
			Type:        r.ReminderType,
			ContactName: r.ContactName,
			Message:     r.Message,
			DueDate:     r.DueDate,
		})
	}
	return report, nil
}

func renderReport(w io.Writer, format string, report remindReport) error {
	switch strings.ToLower(format) {
	case "json":
		_, err := fmt.Fprintln(w, jsonutils.ToJSON(report))
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		return renderTable(w, report)
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func renderTable(w io.Writer, report remindReport) error {
	if len(report.Actions) == 0 && len(report.Reminders) == 0 {
		_, err := fmt.Fprintln(w, color.ColorSuccess("All clear! No pending items."))
		return err
	}

	// Coloured cells only go in the last column: tabwriter counts escape
	// codes as width.
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(report.Actions) > 0 {
		fmt.Fprintln(tw, color.ColorHeading("Pending Action Items"))
		fmt.Fprintln(tw, "DESCRIPTION\tDUE DATE\tFROM NOTE")
		for _, a := range report.Actions {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Description, dash(a.DueDate), color.ColorDim(a.NoteTitle))
		}
		fmt.Fprintln(tw)
	}
	if len(report.Reminders) > 0 {
		fmt.Fprintln(tw, color.ColorHeading("Call / Follow-up Reminders"))
		fmt.Fprintln(tw, "CONTACT\tMESSAGE\tDUE DATE\tTYPE")
		for _, r := range report.Reminders {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ContactName, r.Message, dash(r.DueDate), color.ColorReminderType(r.Type))
		}
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
