package hooks

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/notify-hook/pkg/config"
	"github.com/charmbracelet/notify-hook/pkg/git"
	"github.com/charmbracelet/notify-hook/pkg/push"
	"github.com/charmbracelet/notify-hook/pkg/webhook"
	"gopkg.in/yaml.v3"
)

// PostReceive notifies the hook URLs of a repository about pushed refs.
type PostReceive struct {
	// Repo is the repository that received the push.
	Repo push.Repository
	// Config is the repository configuration.
	Config *config.RepoConfig
	// Client delivers the payloads. A nil client uses the default HTTP
	// client.
	Client *webhook.Client
	// Logger is the logger. A nil logger uses the default logger.
	Logger *log.Logger
	// Debug, when set, receives every payload and its encoded body before
	// they are sent.
	Debug io.Writer
}

// Run reads post-receive lines from r and notifies every pushed ref in input
// order. A malformed line stops processing right away. Other failures are
// logged and processing goes on with the next line; they are all returned,
// joined, once the input is exhausted or a malformed line is met.
func (p *PostReceive) Run(ctx context.Context, r io.Reader) error {
	logger := p.logger()
	var errs []error

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		arg, err := ParseHookArg(line)
		if err != nil {
			return errors.Join(append(errs, err)...)
		}

		if err := p.Push(ctx, arg); err != nil {
			logger.Error("failed to notify push", "ref", arg.RefName, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", arg.RefName, err))
		}
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read hook input: %w", err))
	}

	return errors.Join(errs...)
}

// Push notifies the hook URLs of a single ref update. Created and deleted
// refs are skipped.
func (p *PostReceive) Push(ctx context.Context, arg HookArg) error {
	if p.Config == nil {
		return errors.New("missing repository config")
	}

	logger := p.logger().With("ref", arg.RefName)
	pu, err := push.Collect(p.Repo, arg.OldSha, arg.NewSha, arg.RefName, push.Options{
		DetectRenames: p.Config.DetectRenames,
	})
	if errors.Is(err, push.ErrNullRevision) {
		ref := git.ReferenceName(arg.RefName)
		action := "deleted"
		if git.IsZeroHash(arg.OldSha) {
			action = "created"
		}
		logger.Info("skipping "+ref.Kind()+" "+action, "name", ref.Short())
		return nil
	}
	if err != nil {
		return err
	}

	payload := webhook.NewPushEvent(p.Config.Repository, pu.Head, pu.Commits, pu.Before, pu.After, pu.Ref)
	body, err := webhook.Encode(p.Config.ContentType, payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	logger.Debug("push event", "before", payload.Before, "after", payload.After, "commits", payload.Size)

	if p.Debug != nil {
		if err := writeDebug(p.Debug, payload, body); err != nil {
			return err
		}
	}

	if len(p.Config.HookURLs) == 0 {
		logger.Warn("no hook urls configured", "key", config.HookURLsKey)
		return nil
	}

	return p.client().Deliver(ctx, p.Config.HookURLs, payload.Event(), p.Config.ContentType, body, p.Config.Secret)
}

func writeDebug(w io.Writer, payload webhook.PushEvent, body []byte) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	if _, err := fmt.Fprintf(w, "---\n%s\n", body); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

func (p *PostReceive) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}

func (p *PostReceive) client() *webhook.Client {
	if p.Client == nil {
		p.Client = webhook.NewClient(nil, p.logger())
	}
	return p.Client
}
