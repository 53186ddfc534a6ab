package devcontrol

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Query parameter names for configuration transport.
const (
	ParamPreset    = "preset"
	ParamMagicLink = "demoConfig"
)

// DecodeError reports a malformed magic-link payload. Callers treat it as
// "no transported config" and fall through to the next resolution source.
type DecodeError struct {
	Stage string // "base64" or "json"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode demoConfig (%s): %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode serializes a full config tree to the URL-safe transport form:
// JSON then standard base64, the same bytes the browser's btoa produces.
func Encode(c Config) string {
	data, _ := json.Marshal(c)
	return base64.StdEncoding.EncodeToString(data)
}

// Decode parses the transport form back into a Patch. The payload may be a
// full tree or a partial one; absent keys stay nil and fall back to defaults
// when the patch is applied.
func Decode(raw string) (Patch, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return Patch{}, &DecodeError{Stage: "base64", Err: err}
	}
	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return Patch{}, &DecodeError{Stage: "json", Err: err}
	}
	return p, nil
}

// MagicLink builds the long shareable URL carrying the whole tree.
func MagicLink(origin string, c Config) string {
	return strings.TrimRight(origin, "/") + "/?" + ParamMagicLink + "=" + url.QueryEscape(Encode(c))
}

// PresetLink builds the short shareable URL for a named preset. The name is
// not validated here; the resolver ignores unknown presets.
func PresetLink(origin, name string) string {
	return strings.TrimRight(origin, "/") + "/?" + ParamPreset + "=" + url.QueryEscape(name)
}
