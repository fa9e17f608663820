package repository

import "github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"

// LoadSettings 没有保存过或数据损坏时返回零值
func (r *Repository) LoadSettings() (domain.PaySettings, error) {
	var settings domain.PaySettings
	if _, err := r.load(KeySettings, &settings); err != nil {
		if !isCorrupt(err) {
			return domain.PaySettings{}, err
		}
		r.logCorrupt(KeySettings, err)
		return domain.PaySettings{}, nil
	}

	if err := r.validate.Struct(settings); err != nil {
		r.logCorrupt(KeySettings, corrupt(KeySettings, err))
		return domain.PaySettings{}, nil
	}
	return settings, nil
}

func (r *Repository) SaveSettings(settings domain.PaySettings) error {
	return r.save(KeySettings, settings)
}
