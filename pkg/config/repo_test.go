package config

import (
	"errors"
	"testing"

	"github.com/charmbracelet/notify-hook/pkg/webhook"
	"github.com/matryer/is"
)

type mapSource struct {
	values map[string]string
	name   string
}

func (s mapSource) ConfigValue(key string) string {
	return s.values[key]
}

func (s mapSource) Name() string {
	return s.name
}

func TestLoadRepoConfig(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadRepoConfig(mapSource{values: map[string]string{
		RepoNameKey:        "engine",
		RepoDescriptionKey: "The analytical engine",
		RepoOwnerNameKey:   "Ada Lovelace",
		RepoOwnerEmailKey:  "ada@example.com",
		HookURLsKey:        "https://ci.example.com/push, http://localhost:8080/hook,",
		SecretTokenKey:     "deadbeef",
		ContentTypeKey:     "json",
		DetectRenamesKey:   "true",
	}})
	is.NoErr(err)
	is.Equal(cfg.Repository.Name, "engine")
	is.Equal(cfg.Repository.Description, "The analytical engine")
	is.Equal(*cfg.Repository.Owner, webhook.User{Name: "Ada Lovelace", Email: "ada@example.com"})
	is.Equal(cfg.HookURLs, []string{"https://ci.example.com/push", "http://localhost:8080/hook"})
	is.Equal(cfg.Secret, []byte{0xde, 0xad, 0xbe, 0xef})
	is.Equal(cfg.ContentType, webhook.ContentTypeJSON)
	is.True(cfg.DetectRenames)
}

func TestLoadRepoConfigDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadRepoConfig(mapSource{name: "project"})
	is.NoErr(err)
	is.Equal(cfg.Repository.Name, "project")
	is.Equal(cfg.Repository.Description, "")
	is.True(cfg.Repository.Owner == nil)
	is.Equal(len(cfg.HookURLs), 0)
	is.True(cfg.Secret == nil)
	is.Equal(cfg.ContentType, webhook.ContentTypeForm)
	is.True(!cfg.DetectRenames)
}

func TestLoadRepoConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
		dir    string
		err    error
	}{
		{"bogus content type", map[string]string{ContentTypeKey: "bogus"}, "r", ErrInvalidContentType},
		{"json mime type", map[string]string{ContentTypeKey: "application/json"}, "r", ErrInvalidContentType},
		{"form mime type", map[string]string{ContentTypeKey: "application/x-www-form-urlencoded; charset=utf-8"}, "r", ErrInvalidContentType},
		{"padded content type", map[string]string{ContentTypeKey: " JSON "}, "r", ErrInvalidContentType},
		{"capitalized content type", map[string]string{ContentTypeKey: "Urlencoded"}, "r", ErrInvalidContentType},
		{"secret not hex", map[string]string{SecretTokenKey: "not-hex"}, "r", ErrInvalidSecretToken},
		{"odd secret", map[string]string{SecretTokenKey: "abc"}, "r", ErrInvalidSecretToken},
		{"ftp hook", map[string]string{HookURLsKey: "ftp://example.com"}, "r", ErrInvalidHookURL},
		{"relative hook", map[string]string{HookURLsKey: "https://ok.example.com,/hook"}, "r", ErrInvalidHookURL},
		{"no name", map[string]string{}, "", ErrMissingRepoName},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			_, err := LoadRepoConfig(mapSource{values: c.values, name: c.dir})
			is.True(errors.Is(err, c.err))
		})
	}
}

func TestLoadRepoConfigDetectRenamesInvalid(t *testing.T) {
	is := is.New(t)
	_, err := LoadRepoConfig(mapSource{values: map[string]string{DetectRenamesKey: "sometimes"}, name: "r"})
	is.True(err != nil)
}

func TestRepoNameFromOrigin(t *testing.T) {
	cases := map[string]string{
		"https://github.com/jaemk/notify-hook.git": "notify-hook",
		"https://github.com/jaemk/notify-hook":     "notify-hook",
		"https://github.com/jaemk/notify-hook/":    "notify-hook",
		"git@github.com:jaemk/notify-hook.git":     "notify-hook",
		"git@github.com:notify-hook.git":           "notify-hook",
		"/srv/git/notify-hook.git":                 "notify-hook",
		"":                                         "fallback",
	}

	for url, want := range cases {
		t.Run(url, func(t *testing.T) {
			is := is.New(t)
			cfg, err := LoadRepoConfig(mapSource{
				values: map[string]string{OriginURLKey: url},
				name:   "fallback",
			})
			is.NoErr(err)
			is.Equal(cfg.Repository.Name, want)
		})
	}
}

func TestRepoNameExplicitWins(t *testing.T) {
	is := is.New(t)
	cfg, err := LoadRepoConfig(mapSource{
		values: map[string]string{
			RepoNameKey:  "explicit",
			OriginURLKey: "https://example.com/origin.git",
		},
		name: "dir",
	})
	is.NoErr(err)
	is.Equal(cfg.Repository.Name, "explicit")
}
