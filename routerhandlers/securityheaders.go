package routerhandlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/vitalvas/arbor/router"
)

// ErrBadFrameOption is returned when SecurityHeadersConfig.Framing is not
// "DENY", "SAMEORIGIN", or empty.
var ErrBadFrameOption = errors.New("routerhandlers: framing accepts DENY, SAMEORIGIN, or empty")

// SecurityHeadersConfig selects the hardening headers to emit. The zero
// value produces the baseline set: content-type sniffing off, framing
// denied, and a conservative referrer policy.
type SecurityHeadersConfig struct {
	// Framing becomes the X-Frame-Options value: "DENY" (the default) or
	// "SAMEORIGIN".
	Framing string

	// Referrer becomes the Referrer-Policy value. Empty selects
	// "strict-origin-when-cross-origin".
	Referrer string

	// KeepContentSniffing leaves out the X-Content-Type-Options: nosniff
	// header, letting browsers guess content types again.
	KeepContentSniffing bool

	// HSTS, when positive, emits Strict-Transport-Security with this
	// duration as max-age (rounded down to whole seconds).
	HSTS time.Duration

	// HSTSSubDomains extends the HSTS commitment to subdomains. Ignored
	// unless HSTS is positive.
	HSTSSubDomains bool

	// CSP, when non-empty, becomes the Content-Security-Policy value.
	CSP string
}

// SecurityHeaders compiles the configuration into a fixed header set once,
// and returns middleware that stamps that set onto every response passing
// through its node before continuing the pipeline.
func SecurityHeaders(cfg SecurityHeadersConfig) (router.Handler, error) {
	type header struct {
		name, value string
	}

	var set []header

	switch cfg.Framing {
	case "":
		set = append(set, header{"X-Frame-Options", "DENY"})
	case "DENY", "SAMEORIGIN":
		set = append(set, header{"X-Frame-Options", cfg.Framing})
	default:
		return nil, ErrBadFrameOption
	}

	if !cfg.KeepContentSniffing {
		set = append(set, header{"X-Content-Type-Options", "nosniff"})
	}

	referrer := cfg.Referrer
	if referrer == "" {
		referrer = "strict-origin-when-cross-origin"
	}
	set = append(set, header{"Referrer-Policy", referrer})

	if cfg.HSTS > 0 {
		v := "max-age=" + strconv.FormatInt(int64(cfg.HSTS/time.Second), 10)
		if cfg.HSTSSubDomains {
			v += "; includeSubDomains"
		}
		set = append(set, header{"Strict-Transport-Security", v})
	}

	if cfg.CSP != "" {
		set = append(set, header{"Content-Security-Policy", cfg.CSP})
	}

	return func(c *router.Context, next func()) {
		h := c.Writer.Header()
		for _, kv := range set {
			h.Set(kv.name, kv.value)
		}
		next()
	}, nil
}
