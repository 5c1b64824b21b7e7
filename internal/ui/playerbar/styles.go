package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chartwaves/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

func barStyle() lipgloss.Style { return styles.T().S().Bar }

func titleStyle() lipgloss.Style { return styles.T().S().Title }

func artistStyle() lipgloss.Style { return styles.T().S().Muted }

func metaStyle() lipgloss.Style { return styles.T().S().Subtle }

func errorStyle() lipgloss.Style { return styles.T().S().Error }

func progressBarFilled() lipgloss.Style { return styles.T().S().Playing }

func progressBarEmpty() lipgloss.Style { return styles.T().S().Subtle }

func progressTimeStyle() lipgloss.Style { return styles.T().S().Muted }
