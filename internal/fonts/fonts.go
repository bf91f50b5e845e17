// Package fonts provides the font-provisioning collaborator. Fetching a
// webfont is a presentation-layer side effect triggered alongside rendering;
// render output is correct whether or not a font ever loads, so provisioning
// runs in the background and failures are only logged.
package fonts

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// stylesheetBase is the webfont CSS endpoint; families not served there are
// assumed local and skipped.
const stylesheetBase = "https://fonts.googleapis.com/css2"

// localFamilies never need provisioning.
var localFamilies = map[string]bool{
	"Helvetica": true,
	"Arial":     true,
	"Georgia":   true,
	"Times":     true,
	"Courier":   true,
}

// Provisioner warms webfonts used by a RenderConfig. It remembers which
// families it already requested so repeated customization changes do not
// re-fetch.
type Provisioner struct {
	client *http.Client

	mu     sync.Mutex
	warmed map[string]bool
}

// NewProvisioner creates a Provisioner with a short per-request timeout.
func NewProvisioner() *Provisioner {
	return &Provisioner{
		client: &http.Client{Timeout: 10 * time.Second},
		warmed: make(map[string]bool),
	}
}

// StylesheetURL returns the webfont stylesheet URL for a family, or empty for
// local families.
func StylesheetURL(family string) string {
	if family == "" || localFamilies[family] {
		return ""
	}
	return stylesheetBase + "?family=" + url.QueryEscape(family) + "&display=swap"
}

// Warm requests the stylesheets for every family the config uses. It returns
// immediately; fetches happen in the background and never affect rendering.
func (p *Provisioner) Warm(ctx context.Context, cfg types.RenderConfig) {
	families := []string{
		cfg.Typography.FontFamily.Name,
		cfg.Typography.FontFamily.Header,
		cfg.Typography.FontFamily.Body,
	}

	var pending []string
	p.mu.Lock()
	for _, f := range families {
		u := StylesheetURL(f)
		if u == "" || p.warmed[f] {
			continue
		}
		p.warmed[f] = true
		pending = append(pending, u)
	}
	p.mu.Unlock()

	for _, u := range pending {
		go p.fetch(ctx, u)
	}
}

func (p *Provisioner) fetch(ctx context.Context, u string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("[fonts] bad stylesheet URL %s: %v", u, err)
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[fonts] failed to warm %s: %v", u, err)
		return
	}
	resp.Body.Close()
}
