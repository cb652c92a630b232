// Package tzreport detects the host's timezone and shapes it into
// cookies a web frontend would set, so that a server peer can render
// times in the client's local zone.
package tzreport

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	// CookieOffset carries the UTC offset in minutes, with the sign
	// convention of JavaScript's Date.getTimezoneOffset: zones east
	// of UTC report a negative value.
	CookieOffset = "tz_offset"
	// CookieZone carries the IANA zone name, e.g. "Europe/Berlin".
	CookieZone = "tz"

	cookieMaxAge = 365 * 24 * 3600
)

// Report holds the detected timezone facts.
type Report struct {
	OffsetMinutes int
	Zone          string // IANA name; empty when detection failed
}

// Detect builds a Report for the current host.
func Detect(logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.Default()
	}
	return Report{
		OffsetMinutes: offsetMinutes(time.Now()),
		Zone:          detectZoneName(logger),
	}
}

// offsetMinutes converts a local instant's UTC offset into the
// getTimezoneOffset convention.
func offsetMinutes(now time.Time) int {
	_, sec := now.Zone()
	return -sec / 60
}

// Cookies returns the cookies that report the timezone. Both expire
// after one year, apply site-wide, and use lax same-site so they ride
// along on top-level navigations. The zone cookie is omitted when no
// IANA name could be determined.
func (r Report) Cookies() []*http.Cookie {
	cookies := []*http.Cookie{{
		Name:     CookieOffset,
		Value:    strconv.Itoa(r.OffsetMinutes),
		MaxAge:   cookieMaxAge,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}}
	if r.Zone != "" {
		cookies = append(cookies, &http.Cookie{
			Name:     CookieZone,
			Value:    r.Zone,
			MaxAge:   cookieMaxAge,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})
	}
	return cookies
}

// String renders the report for status output.
func (r Report) String() string {
	zone := r.Zone
	if zone == "" {
		zone = "(unknown)"
	}
	return fmt.Sprintf("%s (offset %d min)", zone, r.OffsetMinutes)
}

// detectZoneName resolves the IANA zone name, trying in order: the TZ
// environment variable, the systemd timedated service, and the
// /etc/localtime symlink. Returns "" when nothing works.
func detectZoneName(logger *slog.Logger) string {
	if tz := os.Getenv("TZ"); tz != "" && tz != "UTC" && strings.Contains(tz, "/") {
		return tz
	}

	if zone, err := zoneFromTimedated(); err == nil && zone != "" {
		return zone
	} else if err != nil {
		logger.Debug("timedated lookup failed", "error", err)
	}

	if zone, err := zoneFromLocaltime("/etc/localtime"); err == nil {
		return zone
	} else {
		logger.Debug("localtime symlink lookup failed", "error", err)
	}

	return ""
}

// zoneFromTimedated reads the Timezone property of
// org.freedesktop.timedate1 on the system bus.
func zoneFromTimedated() (string, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return "", fmt.Errorf("failed to connect to system bus: %w", err)
	}

	obj := conn.Object("org.freedesktop.timedate1", "/org/freedesktop/timedate1")
	variant, err := obj.GetProperty("org.freedesktop.timedate1.Timezone")
	if err != nil {
		return "", fmt.Errorf("failed to read Timezone property: %w", err)
	}

	zone, ok := variant.Value().(string)
	if !ok {
		return "", fmt.Errorf("unexpected Timezone property type %T", variant.Value())
	}
	return zone, nil
}

// zoneFromLocaltime parses the IANA name out of the /etc/localtime
// symlink target, which conventionally points into a zoneinfo tree.
func zoneFromLocaltime(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", err
	}

	const marker = "/zoneinfo/"
	idx := strings.LastIndex(target, marker)
	if idx < 0 {
		return "", fmt.Errorf("localtime target %q is not under a zoneinfo tree", target)
	}

	zone := target[idx+len(marker):]
	if zone == "" {
		return "", fmt.Errorf("localtime target %q has no zone component", target)
	}
	return zone, nil
}
