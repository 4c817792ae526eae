package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable is anything that renders to a writer, templ.Component included.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config is the result of applying RenderOptions.
type Config struct {
	OOBComponents       []Renderable
	Retarget            string
	Reswap              SwapStrategy
	PushURL             string
	ReplaceURL          string
	Triggers            []string
	TriggersAfterSwap   []string
	TriggersAfterSettle []string
	Refresh             bool
}

// RenderOption configures an htmx response.
type RenderOption func(*Config)

// NewConfig applies opts to an empty Config.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders writes the configured headers. Call before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()
	set := func(key, value string) {
		if value != "" {
			h.Set(key, value)
		}
	}

	set(HeaderHXRetarget, c.Retarget)
	set(HeaderHXReswap, string(c.Reswap))
	set(HeaderHXPushURL, c.PushURL)
	set(HeaderHXReplaceURL, c.ReplaceURL)
	set(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	set(HeaderHXTriggerAfterSwap, strings.Join(c.TriggersAfterSwap, ", "))
	set(HeaderHXTriggerAfterSettle, strings.Join(c.TriggersAfterSettle, ", "))
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// RenderOOB writes the out-of-band components after the main response.
// Components render only for htmx requests; each must carry an id and
// hx-swap-oob attribute.
func (c *Config) RenderOOB(ctx context.Context, w io.Writer) error {
	if c == nil {
		return nil
	}
	for _, comp := range c.OOBComponents {
		if err := comp.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// WithOOB appends out-of-band components.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets HX-Retarget.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets HX-Reswap.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithPushURL sets HX-Push-Url. "false" disables the history entry.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithReplaceURL sets HX-Replace-Url.
func WithReplaceURL(url string) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = url
	}
}

// WithTrigger adds client events to HX-Trigger.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithTriggerAfterSwap adds events to HX-Trigger-After-Swap.
func WithTriggerAfterSwap(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSwap = append(c.TriggersAfterSwap, events...)
	}
}

// WithTriggerAfterSettle adds events to HX-Trigger-After-Settle.
func WithTriggerAfterSettle(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSettle = append(c.TriggersAfterSettle, events...)
	}
}

// WithRefresh forces a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
