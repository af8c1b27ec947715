package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/notify-hook/pkg/webhook"
)

// Repository configuration keys.
const (
	RepoNameKey        = "hooks.notify.repo-name"
	RepoDescriptionKey = "hooks.notify.repo-description"
	RepoOwnerNameKey   = "hooks.notify.repo-owner-name"
	RepoOwnerEmailKey  = "hooks.notify.repo-owner-email"
	HookURLsKey        = "hooks.notify.hook-urls"
	SecretTokenKey     = "hooks.notify.secret-token"
	ContentTypeKey     = "hooks.notify.content-type"
	DetectRenamesKey   = "hooks.notify.detect-renames"
	OriginURLKey       = "remote.origin.url"
)

var (
	// ErrInvalidContentType is returned when the configured content type is
	// neither "json" nor "urlencoded".
	ErrInvalidContentType = errors.New("invalid content type")
	// ErrInvalidSecretToken is returned when the secret token isn't hex.
	ErrInvalidSecretToken = errors.New("invalid secret token")
	// ErrInvalidHookURL is returned when a hook URL can't be posted to.
	ErrInvalidHookURL = errors.New("invalid hook url")
	// ErrMissingRepoName is returned when no repository name can be found.
	ErrMissingRepoName = errors.New("missing repository name")
)

// Source is where repository settings are read from.
type Source interface {
	// ConfigValue returns a git config value, or an empty string when the
	// key is not set.
	ConfigValue(key string) string
	// Name returns the repository directory name.
	Name() string
}

// RepoConfig is the per repository configuration of the hook.
type RepoConfig struct {
	// Repository is the repository part of the payload.
	Repository webhook.Repository

	// HookURLs are the URLs payloads are delivered to, in order.
	HookURLs []string

	// Secret signs payloads. It is nil when no secret is configured.
	Secret []byte

	// ContentType is the payload encoding.
	ContentType webhook.ContentType

	// DetectRenames reports renamed paths as modified.
	DetectRenames bool
}

// LoadRepoConfig reads the repository configuration from src.
func LoadRepoConfig(src Source) (*RepoConfig, error) {
	cfg := &RepoConfig{
		ContentType: webhook.ContentTypeForm,
	}

	if v := src.ConfigValue(ContentTypeKey); v != "" {
		ct, err := webhook.ParseContentTypeName(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q", ContentTypeKey, ErrInvalidContentType, v)
		}
		cfg.ContentType = ct
	}

	if v := strings.TrimSpace(src.ConfigValue(SecretTokenKey)); v != "" {
		secret, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", SecretTokenKey, ErrInvalidSecretToken, err)
		}
		cfg.Secret = secret
	}

	for _, u := range strings.Split(src.ConfigValue(HookURLsKey), ",") {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if err := webhook.ValidateWebhookURL(u); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", HookURLsKey, ErrInvalidHookURL, err)
		}
		cfg.HookURLs = append(cfg.HookURLs, u)
	}

	if v := src.ConfigValue(DetectRenamesKey); v != "" {
		detect, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", DetectRenamesKey, err)
		}
		cfg.DetectRenames = detect
	}

	name := repoName(src)
	if name == "" {
		return nil, ErrMissingRepoName
	}

	cfg.Repository = webhook.Repository{
		Name:        name,
		Description: src.ConfigValue(RepoDescriptionKey),
	}

	ownerName, ownerEmail := src.ConfigValue(RepoOwnerNameKey), src.ConfigValue(RepoOwnerEmailKey)
	if ownerName != "" || ownerEmail != "" {
		cfg.Repository.Owner = &webhook.User{
			Name:  ownerName,
			Email: ownerEmail,
		}
	}

	return cfg, nil
}

// repoName returns the configured repository name, falling back to the last
// path segment of the origin URL and then to the repository directory name.
func repoName(src Source) string {
	if name := strings.TrimSpace(src.ConfigValue(RepoNameKey)); name != "" {
		return name
	}

	if name := originName(src.ConfigValue(OriginURLKey)); name != "" {
		return name
	}

	return src.Name()
}

// originName returns the repository name of a remote URL. It handles both
// URLs and scp-like addresses, i.e. "git@host:owner/repo.git".
func originName(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return ""
	}

	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}

	return strings.TrimSuffix(url, ".git")
}
