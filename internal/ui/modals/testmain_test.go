package modals

import (
	"image/color"
	"os"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestMain(m *testing.M) {
	initTestStyles()
	os.Exit(m.Run())
}

func initTestStyles() {
	ModalTitleStyle = lipgloss.NewStyle().Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().Italic(true)
	ItemStyle = lipgloss.NewStyle()
	ItemSelectedStyle = lipgloss.NewStyle().Reverse(true)
	StatusErrorStyle = lipgloss.NewStyle()

	ColorPrimary = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	ColorSecondary = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	ColorText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorTextMuted = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorTextInverse = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorWarning = color.RGBA{R: 255, G: 180, B: 0, A: 255}
	ColorError = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	ModalWidth = 60
	ModalWidthWide = 100
}
