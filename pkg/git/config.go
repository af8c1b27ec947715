package git

import (
	"strings"

	"github.com/go-git/go-git/v5/config"
)

// ConfigValue returns the repository configuration value for the given key,
// e.g. "hooks.notify.repo-name" or "remote.origin.url". Keys have the form
// section[.subsection].name, like git-config(1). An empty string is returned
// for unset keys.
func (r *Repository) ConfigValue(key string) string {
	section, subsection, name, ok := splitConfigKey(key)
	if !ok {
		return ""
	}

	cfg, err := r.Config()
	if err != nil || cfg.Raw == nil || !cfg.Raw.HasSection(section) {
		return ""
	}

	s := cfg.Raw.Section(section)
	if subsection == "" {
		return s.Option(name)
	}
	if !s.HasSubsection(subsection) {
		return ""
	}

	return s.Subsection(subsection).Option(name)
}

// SetConfigValue sets the repository configuration value for the given key.
func (r *Repository) SetConfigValue(key, value string) error {
	section, subsection, name, ok := splitConfigKey(key)
	if !ok {
		return ErrInvalidConfigKey
	}

	cfg, err := r.Config()
	if err != nil {
		return err
	}

	s := cfg.Raw.Section(section)
	if subsection == "" {
		s.SetOption(name, value)
	} else {
		s.Subsection(subsection).SetOption(name, value)
	}

	// go-git rewrites the remote sections from the typed remotes when the
	// config is marshaled.
	if section == "remote" && subsection != "" && name == "url" {
		rc, ok := cfg.Remotes[subsection]
		if !ok {
			rc = &config.RemoteConfig{Name: subsection}
			cfg.Remotes[subsection] = rc
		}
		rc.URLs = []string{value}
	}

	return r.SetConfig(cfg)
}

func splitConfigKey(key string) (section, subsection, name string, ok bool) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", "", false
	}

	section = key[:first]
	name = key[last+1:]
	if first != last {
		subsection = key[first+1 : last]
	}

	return section, subsection, name, true
}
