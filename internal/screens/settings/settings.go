// Package settings shows the effective configuration.
package settings

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/config"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/theme"
)

const notSet = "(not set)"

// Row is one labelled setting.
type Row struct {
	Label string
	Value string
}

// Screen is a read-only view of the configuration in effect.
type Screen struct {
	rows []Row
	hint string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the settings screen for cfg. source describes the data source
// the dashboard was loaded from.
func New(cfg config.Config, source string) *Screen {
	hint := "Set values in config.yaml or OASYS_* environment variables"
	if dir, err := config.DefaultDir(); err == nil {
		hint = fmt.Sprintf("Set values in %s or OASYS_* environment variables", filepath.Join(dir, "config.yaml"))
	}
	return &Screen{rows: Rows(cfg, source), hint: hint}
}

// Rows flattens cfg into display rows.
func Rows(cfg config.Config, source string) []Row {
	return []Row{
		{"Data source", orNotSet(source)},
		{"Start in dark mode", onOff(cfg.UI.DarkMode)},
		{"Reply delay", cfg.Chat.ReplyDelay.String()},
		{"Drop superseded replies", onOff(cfg.Chat.Coalesce)},
		{"SQLite database", orNotSet(cfg.Store.Path)},
		{"Redis address", orNotSet(cfg.Store.RedisAddr)},
		{"Redis database", fmt.Sprintf("%d", cfg.Store.RedisDB)},
		{"JSON data file", orNotSet(cfg.Data.File)},
		{"API address", orNotSet(cfg.API.Addr)},
		{"Log file", orNotSet(cfg.Log.File)},
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) Title() string {
	return "Settings"
}

func (s *Screen) View(width, height int, p theme.Palette) string {
	cw := width - 4
	if cw > 90 {
		cw = 90
	}
	labelStyle := lipgloss.NewStyle().Foreground(p.TextDim).Width(26)

	lines := make([]string, 0, len(s.rows)+2)
	for _, r := range s.rows {
		value := p.Body().Render(r.Value)
		if r.Value == notSet {
			value = p.Hint().Render(r.Value)
		}
		lines = append(lines, labelStyle.Render(r.Label)+value)
	}
	lines = append(lines, "", p.Hint().Render(s.hint))

	return components.CenterBlock(components.Card(p, "Settings", strings.Join(lines, "\n"), cw, false), width, height)
}

func orNotSet(s string) string {
	if s == "" {
		return notSet
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
