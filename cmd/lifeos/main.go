package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"lifeos/internal/cli"
	"lifeos/internal/cli/achievements"
	"lifeos/internal/cli/books"
	"lifeos/internal/cli/days"
	"lifeos/internal/cli/goals"
	"lifeos/internal/cli/habits"
	"lifeos/internal/cli/system"
	"lifeos/internal/cli/tasks"
	"lifeos/internal/constants"
	"lifeos/internal/errors"
	"lifeos/internal/keyring"
	"lifeos/internal/logger"
	"lifeos/internal/reward"
	"lifeos/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A directory for the flat-file backend, or a path ending in .db for SQLite." default:"~/.config/lifeos"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize lifeos storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Rewrite stored data in the current format."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Key     struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
		Show   system.KeyShowCmd   `cmd:"" help:"Show the stored API key (masked)."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the API key from the keyring."`
	} `cmd:"" help:"Manage the Gemini API key."`
	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a daily task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List today's tasks and score." default:"1"`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Mark a task complete."`
		Undone tasks.TaskUndoneCmd `cmd:"" help:"Mark a task incomplete."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		Reset  tasks.TaskResetCmd  `cmd:"" help:"Uncheck every task for a fresh day."`
	} `cmd:"" help:"Manage the daily protocol."`
	Log days.LogCmd `cmd:"" help:"Write a day's score into the history."`
	Day days.DayCmd `cmd:"" help:"Show the recorded history for a day."`
	Goal struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a goal to a planner period."`
		List   goals.GoalListCmd   `cmd:"" help:"List goals for a planner period." default:"1"`
		Toggle goals.GoalToggleCmd `cmd:"" help:"Toggle a goal's completion."`
		Remove goals.GoalRemoveCmd `cmd:"" help:"Remove a goal."`
	} `cmd:"" help:"Manage planner goals."`
	Habit struct {
		List   habits.HabitListCmd   `cmd:"" help:"List habits with done/missed counts." default:"1"`
		Mark   habits.HabitMarkCmd   `cmd:"" help:"Mark a habit done for a date."`
		Miss   habits.HabitMissCmd   `cmd:"" help:"Mark a habit missed for a date."`
		Clear  habits.HabitClearCmd  `cmd:"" help:"Clear a habit's entry for a date."`
		Rename habits.HabitRenameCmd `cmd:"" help:"Rename a habit."`
	} `cmd:"" help:"Manage the consistency grid."`
	Achievement struct {
		Add    achievements.AddCmd    `cmd:"" help:"Log an achievement."`
		List   achievements.ListCmd   `cmd:"" help:"List achievements, newest first." default:"1"`
		Delete achievements.DeleteCmd `cmd:"" help:"Delete an achievement."`
	} `cmd:"" help:"Manage the achievements log."`
	Book struct {
		Add      books.BookAddCmd      `cmd:"" help:"Add a book to the library."`
		List     books.BookListCmd     `cmd:"" help:"List books with progress." default:"1"`
		Progress books.BookProgressCmd `cmd:"" help:"Update reading progress."`
		Reward   books.BookRewardCmd   `cmd:"" help:"Claim the movie reward for a finished book."`
		Delete   books.BookDeleteCmd   `cmd:"" help:"Remove a book."`
	} `cmd:"" help:"Manage the library."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal dashboard: daily protocol, consistency grid, planner, victories, library"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	logDir := configPath
	if strings.HasSuffix(configPath, ".db") {
		logDir = filepath.Dir(configPath)
	}
	if err := logger.Init(logDir, CLI.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewDiskvStore(configPath)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:       store,
		Recommender: reward.NewGeminiRecommender(resolveAPIKey()),
	}

	// Load the store before running the command. Init handles its own setup,
	// and the key commands never touch storage.
	if cmd := ctx.Command(); cmd != "init" && !strings.HasPrefix(cmd, "key ") {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// resolveAPIKey checks the OS keyring first, then the environment and any
// .env file in the working directory. An empty key is fine: the recommender
// degrades to a fixed message.
func resolveAPIKey() string {
	key, err := keyring.GetAPIKey()
	if err == nil {
		return key
	}
	if !stderrors.Is(err, keyring.ErrNotFound) {
		logger.Warn("keyring unavailable", "error", err)
	}
	_ = godotenv.Load()
	return os.Getenv("GEMINI_API_KEY")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
