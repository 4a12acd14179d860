// Package styles contains Lip Gloss style definitions shared by the desktop
// and the windows it hosts.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	BorderModalColor   = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#FECA57"}
	TitleColor         = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#C9C9C9"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle        = baseButtonStyle.Foreground(ButtonTextColor).Background(ButtonPrimaryBgColor)
	PrimaryButtonFocusedStyle = baseButtonStyle.Foreground(ButtonTextColor).Background(ButtonPrimaryFocusBgColor).Underline(true)

	SecondaryButtonStyle        = baseButtonStyle.Foreground(ButtonTextColor).Background(ButtonSecondaryBgColor)
	SecondaryButtonFocusedStyle = baseButtonStyle.Foreground(ButtonTextColor).Background(ButtonSecondaryFocusBgColor).Underline(true)

	DangerButtonStyle        = baseButtonStyle.Foreground(ButtonTextColor).Background(ButtonDangerBgColor)
	DangerButtonFocusedStyle = baseButtonStyle.Foreground(ButtonTextColor).Background(ButtonDangerFocusBgColor).Underline(true)

	HintStyle      = lipgloss.NewStyle().Foreground(TextMutedColor)
	LabelStyle     = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	ValueStyle     = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(StatusErrorColor)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	SelectedStyle  = lipgloss.NewStyle().Foreground(BorderFocusColor).Bold(true)
)
