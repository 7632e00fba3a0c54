// Package settings owns the single system settings record.
package settings

import "github.com/trezcool/kitivo/core/user"

// Settings is a singleton record.
type Settings struct {
	MaintenanceMode bool `json:"maintenance_mode"`
}

type (
	Repository interface {
		GetSettings() (Settings, error)
		SaveSettings(Settings) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get() (Settings, error) {
	return svc.repo.GetSettings()
}

func (svc *Service) SetMaintenanceMode(on bool) (Settings, error) {
	s, err := svc.repo.GetSettings()
	if err != nil {
		return Settings{}, err
	}
	s.MaintenanceMode = on
	if err = svc.repo.SaveSettings(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Allows reports whether a role may use the portal right now. When
// maintenance mode is on, only admins and class presidents pass; everyone
// else gets the blocking view before any routing happens.
func (s Settings) Allows(role string) bool {
	if !s.MaintenanceMode {
		return true
	}
	return role == user.RoleAdmin || role == user.RoleClassPresident
}
