package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const banner = `
    ██╗    ██╗███████╗███████╗
    ██║    ██║██╔════╝██╔════╝
    ██║ █╗ ██║███████╗███████╗
    ██║███╗██║╚════██║╚════██║
    ╚███╔███╔╝███████║███████║
     ╚══╝╚══╝ ╚══════╝╚══════╝

         WiFi Scanner Suite
`

func printBanner() {
	style := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	fmt.Println(style.Render(banner))
}
