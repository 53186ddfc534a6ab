package devcontrol

import (
	"encoding/base64"
	"errors"
	"net/url"
	"reflect"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	trees := map[string]Config{
		"defaults":    Defaults(),
		"maintenance": Defaults().Apply(presetMaintenance()),
		"minimal":     Defaults().Apply(presetMinimal()),
		"mixed": Defaults().Apply(Patch{
			Landing: &LandingPatch{ShowTestimonials: flag(false)},
			Admin:   &AdminPatch{Table: &AdminTablePatch{ShowRevenueCol: flag(false)}},
		}),
	}

	for name, want := range trees {
		t.Run(name, func(t *testing.T) {
			patch, err := Decode(Encode(want))
			if err != nil {
				t.Fatalf("Decode(Encode(...)) error: %v", err)
			}
			got := Defaults().Apply(patch)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestDecodePartialTree(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte(`{"system":{"maintenanceMode":true}}`))
	patch, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode partial: %v", err)
	}
	got := Defaults().Apply(patch)
	if !got.System.MaintenanceMode {
		t.Errorf("partial decode did not apply maintenanceMode")
	}
	if !got.Landing.ShowHero {
		t.Errorf("partial decode disturbed defaults outside the payload")
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		stage string
	}{
		{"not base64", "%%%definitely-not-base64%%%", "base64"},
		{"base64 of junk", base64.StdEncoding.EncodeToString([]byte("{not json")), "json"},
		{"base64 of wrong shape", base64.StdEncoding.EncodeToString([]byte(`{"system":"yes"}`)), "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tt.raw)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Decode error type = %T, want *DecodeError", err)
			}
			if decodeErr.Stage != tt.stage {
				t.Errorf("DecodeError.Stage = %q, want %q", decodeErr.Stage, tt.stage)
			}
		})
	}
}

func TestPresetLinkFormat(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		preset string
		want   string
	}{
		{"plain", "https://susanalopezstudio.com", "demo", "https://susanalopezstudio.com/?preset=demo"},
		{"trailing slash", "https://susanalopezstudio.com/", "minimal", "https://susanalopezstudio.com/?preset=minimal"},
		{"unknown name still builds", "https://x.test", "bogus", "https://x.test/?preset=bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PresetLink(tt.origin, tt.preset); got != tt.want {
				t.Errorf("PresetLink(%q, %q) = %q, want %q", tt.origin, tt.preset, got, tt.want)
			}
		})
	}
}

func TestMagicLinkCarriesDecodableTree(t *testing.T) {
	want := Defaults().Apply(presetMinimal())
	link := MagicLink("https://susanalopezstudio.com", want)

	prefix := "https://susanalopezstudio.com/?demoConfig="
	if len(link) <= len(prefix) || link[:len(prefix)] != prefix {
		t.Fatalf("MagicLink = %q, want prefix %q", link, prefix)
	}

	// The query component must decode back to the same tree.
	patch, err := Decode(mustQueryUnescape(t, link[len(prefix):]))
	if err != nil {
		t.Fatalf("decoding magic link payload: %v", err)
	}
	if got := Defaults().Apply(patch); !reflect.DeepEqual(got, want) {
		t.Errorf("magic link round trip mismatch")
	}
}

func mustQueryUnescape(t *testing.T, s string) string {
	t.Helper()
	out, err := url.QueryUnescape(s)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	return out
}
