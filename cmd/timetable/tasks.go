package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timetable-tracker/internal/model"
	"timetable-tracker/internal/tracker"
)

func (a *app) newTaskCmd() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long: `Manage recurring tasks.

Examples:
  # Add an open-ended task starting today
  timetable task add --name "Read 20 pages" --category Reading

  # Add a bounded task
  timetable task add --name "Couch to 5k" --start 2024-01-01 --end 2024-03-31 --priority high

  # List tasks
  timetable task list

  # Delete a task and its completion records
  timetable task delete <task-id>`,
	}

	var (
		name        string
		description string
		category    string
		start       string
		end         string
		priority    string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := a.parseDate(start)
			if err != nil {
				return err
			}

			input := tracker.CreateTaskInput{
				Name:        name,
				Description: description,
				Category:    category,
				StartDate:   startDate,
				Priority:    model.Priority(strings.ToLower(priority)),
			}
			if end != "" {
				endDate, err := a.parseDate(end)
				if err != nil {
					return err
				}
				input.EndDate = &endDate
			}

			task, err := a.uc.CreateTask(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}

			if a.outputJSON {
				return outputJSON(cmd.OutOrStdout(), task)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task added\nID: %s\n", task.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Task name (required)")
	addCmd.Flags().StringVar(&description, "description", "", "Task description")
	addCmd.Flags().StringVar(&category, "category", "", "Category, e.g. "+strings.Join(model.SuggestedCategories, ", "))
	addCmd.Flags().StringVar(&start, "start", "", "First active day (default today)")
	addCmd.Flags().StringVar(&end, "end", "", "Last active day (default open-ended)")
	addCmd.Flags().StringVar(&priority, "priority", string(model.PriorityMedium), "low, medium or high")
	_ = addCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.uc.ListTasks(cmd.Context())
			if err != nil {
				return err
			}

			if a.outputJSON {
				return outputJSON(cmd.OutOrStdout(), tasks)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRIORITY\tSTART\tEND")
			for _, t := range tasks {
				endText := "-"
				if t.EndDate != nil {
					endText = t.EndDate.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Category, t.Priority, t.StartDate, endText)
			}
			return w.Flush()
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task and its completion records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.uc.DeleteTask(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s deleted\n", args[0])
			return nil
		},
	}

	taskCmd.AddCommand(addCmd, listCmd, deleteCmd)
	return taskCmd
}

func (a *app) newToggleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Toggle completion of a task on a day",
		Long: `Toggle completion of a task on a day (default today).

Examples:
  timetable toggle <task-id>
  timetable toggle <task-id> --date yesterday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(date)
			if err != nil {
				return err
			}

			rec, err := a.uc.ToggleCompletion(cmd.Context(), tracker.ToggleInput{TaskID: args[0], Date: d})
			if err != nil {
				return fmt.Errorf("failed to toggle: %w", err)
			}

			if a.outputJSON {
				return outputJSON(cmd.OutOrStdout(), rec)
			}
			state := "not done"
			if rec.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s\n", rec.TaskID, rec.Date, state)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to toggle (default today)")
	return cmd
}

func (a *app) newTodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show tasks active on a day with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(date)
			if err != nil {
				return err
			}

			items, err := a.uc.TasksWithProgress(cmd.Context(), d)
			if err != nil {
				return err
			}

			if a.outputJSON {
				return outputJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No active tasks on %s\n", d)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DONE\tID\tNAME\tSTREAK\tDAYS\tRATE")
			for _, tp := range items {
				mark := "[ ]"
				if tp.TodayCompleted {
					mark = "[x]"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\t%.0f%%\n",
					mark, tp.ID, tp.Name, tp.Streak, tp.CompletedDays, tp.TotalDays, tp.CompletionRate)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to show (default today)")
	return cmd
}
