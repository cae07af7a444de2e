package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"lifeos/internal/constants"
)

type TaskFormModel struct {
	Title  string
	Weight string
}

type LogFormModel struct {
	Date   string
	Nature bool
	Note   string
}

type GoalFormModel struct {
	Text string
}

type RenameFormModel struct {
	Title string
}

type AchievementFormModel struct {
	Title string
	Story string
	Date  string
}

type BookFormModel struct {
	Title  string
	Author string
	Pages  string
}

type ProgressFormModel struct {
	Page string
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func positiveInt(field string) func(string) error {
	return func(s string) error {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		if i <= 0 {
			return fmt.Errorf("%s must be positive", field)
		}
		return nil
	}
}

func validDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date, use YYYY-MM-DD")
	}
	return nil
}

// NewTaskForm creates the form for adding a daily task.
func NewTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&fm.Title).
				Validate(notBlank("task")),
			huh.NewInput().
				Title("Weight (% of the day)").
				Value(&fm.Weight).
				Validate(positiveInt("weight")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewLogForm creates the form for writing a day into the history.
func NewLogForm(fm *LogFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(validDate),
			huh.NewConfirm().
				Title("Nature day?").
				Description("A nature day counts as a full score regardless of tasks").
				Value(&fm.Nature),
			huh.NewText().
				Title("Note").
				Description("Required for nature days").
				Value(&fm.Note).
				Validate(func(s string) error {
					if fm.Nature && strings.TrimSpace(s) == "" {
						return fmt.Errorf("a nature day needs a note")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Value(&fm.Text).
				Validate(notBlank("goal")),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewRenameForm(fm *RenameFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Title).
				Validate(notBlank("habit name")),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewAchievementForm(fm *AchievementFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Victory").
				Value(&fm.Title).
				Validate(notBlank("victory")),
			huh.NewText().
				Title("The Story").
				Value(&fm.Story).
				Validate(notBlank("story")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(validDate),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewBookForm(fm *BookFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(notBlank("title")),
			huh.NewInput().
				Title("Author").
				Value(&fm.Author),
			huh.NewInput().
				Title("Total Pages").
				Value(&fm.Pages).
				Validate(positiveInt("total pages")),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewProgressForm(fm *ProgressFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current Page").
				Value(&fm.Page).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("current page must be a number")
					}
					if i < 0 {
						return fmt.Errorf("current page cannot be negative")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
