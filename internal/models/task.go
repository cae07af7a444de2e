package models

import "strings"

// Task is a single entry in the daily protocol. Weight is the task's share of
// the day in percent; the sum over all tasks may exceed 100.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Weight    int    `json:"weight"`
	Completed bool   `json:"completed"`
}

// Valid reports whether the task could be created from user input.
func (t Task) Valid() bool {
	return strings.TrimSpace(t.Title) != "" && t.Weight > 0
}

// TotalScore sums the weights of completed tasks.
func TotalScore(tasks []Task) int {
	total := 0
	for _, t := range tasks {
		if t.Completed {
			total += t.Weight
		}
	}
	return total
}

// Capacity sums all task weights, completed or not.
func Capacity(tasks []Task) int {
	total := 0
	for _, t := range tasks {
		total += t.Weight
	}
	return total
}
