package store

import (
	"fmt"

	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// Setting names a toggleable preference.
type Setting string

const (
	SettingDarkMode Setting = "isDarkMode"
	SettingSidebar  Setting = "sidebarCollapsed"
)

// ToggleSetting flips the named preference and returns the resulting
// settings.
func (s *Store) ToggleSetting(setting Setting) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, err := s.toggleSetting(setting)
	s.finish("toggle_setting", err)
	return settings, err
}

func (s *Store) toggleSetting(setting Setting) (models.Settings, error) {
	switch setting {
	case SettingDarkMode:
		s.state.Settings.IsDarkMode = !s.state.Settings.IsDarkMode
	case SettingSidebar:
		s.state.Settings.SidebarCollapsed = !s.state.Settings.SidebarCollapsed
	default:
		return s.state.Settings, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown setting %q", setting))
	}
	return s.state.Settings, nil
}
