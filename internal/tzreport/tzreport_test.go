package tzreport

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetMinutes(t *testing.T) {
	// East of UTC reports negative, west positive, per
	// Date.getTimezoneOffset.
	tests := []struct {
		zone string
		sec  int
		want int
	}{
		{"UTC", 0, 0},
		{"CET", 3600, -60},
		{"EST", -5 * 3600, 300},
		{"IST", 5*3600 + 1800, -330},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			loc := time.FixedZone(tt.zone, tt.sec)
			now := time.Date(2026, 8, 25, 12, 0, 0, 0, loc)
			assert.Equal(t, tt.want, offsetMinutes(now))
		})
	}
}

func TestCookies(t *testing.T) {
	r := Report{OffsetMinutes: -120, Zone: "Europe/Berlin"}
	cookies := r.Cookies()
	require.Len(t, cookies, 2)

	offset := cookies[0]
	assert.Equal(t, CookieOffset, offset.Name)
	assert.Equal(t, "-120", offset.Value)
	assert.Equal(t, 365*24*3600, offset.MaxAge)
	assert.Equal(t, "/", offset.Path)
	assert.Equal(t, http.SameSiteLaxMode, offset.SameSite)

	zone := cookies[1]
	assert.Equal(t, CookieZone, zone.Name)
	assert.Equal(t, "Europe/Berlin", zone.Value)
	assert.Equal(t, 365*24*3600, zone.MaxAge)
	assert.Equal(t, "/", zone.Path)
	assert.Equal(t, http.SameSiteLaxMode, zone.SameSite)
}

func TestCookies_OmitsZoneWhenUnknown(t *testing.T) {
	cookies := Report{OffsetMinutes: 0}.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieOffset, cookies[0].Name)
}

func TestZoneFromLocaltime(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink("/usr/share/zoneinfo/America/New_York", link))

	zone, err := zoneFromLocaltime(link)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", zone)
}

func TestZoneFromLocaltime_NotASymlink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "localtime")
	require.NoError(t, os.WriteFile(path, []byte("TZif"), 0644))

	_, err := zoneFromLocaltime(path)
	assert.Error(t, err)
}

func TestZoneFromLocaltime_UnexpectedTarget(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink("/etc/somewhere/else", link))

	_, err := zoneFromLocaltime(link)
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Europe/Berlin (offset -120 min)",
		Report{OffsetMinutes: -120, Zone: "Europe/Berlin"}.String())
	assert.Equal(t, "(unknown) (offset 0 min)", Report{}.String())
}
