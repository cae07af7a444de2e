package models

import (
	"strings"

	"lifeos/internal/constants"
)

// Book tracks reading progress toward a movie-night reward. The reward
// recommendation is fetched once and kept on the book permanently.
type Book struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Author               string `json:"author"`
	TotalPages           int    `json:"totalPages"`
	CurrentPage          int    `json:"currentPage"`
	RewardUnlocked       bool   `json:"rewardUnlocked"`
	RewardRecommendation string `json:"rewardRecommendation,omitempty"`
}

// Valid reports whether the book could be created from user input.
func (b Book) Valid() bool {
	return strings.TrimSpace(b.Title) != "" && b.TotalPages > 0
}

// Percent is the reading progress in whole percent, clamped to [0, 100].
func (b Book) Percent() int {
	if b.TotalPages <= 0 {
		return 0
	}
	p := b.CurrentPage * 100 / b.TotalPages
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// RewardEligible reports whether enough of the book has been read to claim
// its reward.
func (b Book) RewardEligible() bool {
	return b.Percent() >= constants.RewardUnlockPercent
}

// SetProgress records the current page, clamped to [0, TotalPages].
func (b *Book) SetProgress(page int) {
	if page < 0 {
		page = 0
	}
	if page > b.TotalPages {
		page = b.TotalPages
	}
	b.CurrentPage = page
}
