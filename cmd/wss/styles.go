package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#22D3EE"}
	accentColor  = lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#4ADE80"}
	subtleColor  = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#888888"}
	warningColor = lipgloss.AdaptiveColor{Light: "#FF9500", Dark: "#FFB84D"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	openNetStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	securedNetStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

func renderError(msg string) string   { return errorStyle.Render("✗ " + msg) }
func renderSuccess(msg string) string { return successStyle.Render("✓ " + msg) }
func renderWarning(msg string) string { return warningStyle.Render("! " + msg) }
func renderInfo(msg string) string    { return infoStyle.Render(msg) }
