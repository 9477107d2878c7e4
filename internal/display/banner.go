package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the startup art with an optional status line under
// it, centred as one block in a terminal of the given width. A width of
// zero or less uses the current terminal width.
func RenderBanner(subtitle string, width int) string {
	if width <= 0 {
		width = termWidth()
	}

	block := BannerStyle.Render(strings.TrimRight(bannerRaw, "\n"))
	if subtitle != "" {
		block = lipgloss.JoinVertical(lipgloss.Center, block, hintStyle.Render(subtitle))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block) + "\n"
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
