package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
)

// List fetches the user's tasks (newest first) and prints them with list
// numbers. The printed order is cached so done/rm can address tasks by
// number.
func (a *App) List(ctx context.Context) error {
	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	a.lastList = tasks

	if len(tasks) == 0 {
		printlnFn("No tasks yet")
		return nil
	}

	for i, task := range tasks {
		printlnFn(formatTask(i+1, task))
	}
	return nil
}

// Add creates a task. The title comes from the command arguments, or from a
// prompt when none are given.
func (a *App) Add(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if title == "" {
		var err error
		title, err = getSimpleText(a.reader, "Enter title", os.Stdout)
		if err != nil {
			return err
		}
	}

	task, err := a.api.CreateTask(ctx, title, nil)
	if err != nil {
		return err
	}

	printlnFn("Added:", task.Title)
	return nil
}

// Done marks the task with the given list number as completed.
func (a *App) Done(ctx context.Context, args []string) error {
	task, err := a.taskByNumber(ctx, args)
	if err != nil {
		return err
	}

	done := true
	updated, err := a.api.UpdateTask(ctx, task.ID, api.TaskPatch{Done: &done})
	if err != nil {
		return err
	}

	printlnFn("Done:", updated.Title)
	return nil
}

// Rm deletes the task with the given list number.
func (a *App) Rm(ctx context.Context, args []string) error {
	task, err := a.taskByNumber(ctx, args)
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, task.ID); err != nil {
		return err
	}

	printlnFn("Removed:", task.Title)
	return nil
}

// taskByNumber resolves a list number from args against the most recently
// printed list, refreshing it from the server when empty.
func (a *App) taskByNumber(ctx context.Context, args []string) (*api.Task, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("task number required, run 'list' first")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid task number: %q", args[0])
	}

	if len(a.lastList) == 0 {
		tasks, err := a.api.ListTasks(ctx)
		if err != nil {
			return nil, err
		}
		a.lastList = tasks
	}

	if n < 1 || n > len(a.lastList) {
		return nil, fmt.Errorf("no task with number %d", n)
	}
	return &a.lastList[n-1], nil
}

func formatTask(n int, task api.Task) string {
	mark := " "
	if task.Done {
		mark = "x"
	}
	s := fmt.Sprintf("%3d. [%s] %s", n, mark, task.Title)
	if task.Description != nil && *task.Description != "" {
		s += " / " + *task.Description
	}
	return s
}
