package hx

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// KV is one key of a Values object.
type KV struct {
	Key   string
	Value any
}

// Values is a JSON object that keeps its keys in the order given. Use it
// wherever the order of hx-vals or hx-headers keys matters; plain maps are
// encoded with sorted keys.
type Values []KV

// MarshalJSON encodes v as a compact JSON object in insertion order.
func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalCompact(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalCompact(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalCompact encodes v without HTML escaping; the renderer escapes
// attribute values itself.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JS prefixes expr so htmx evaluates hx-vals as JavaScript rather than JSON.
func JS(expr string) string { return "js:" + expr }

// jsonValue renders v for hx-vals and hx-headers. Strings pass through
// verbatim. A value that cannot be encoded, or that encodes to JSON null
// (a nil map, slice or pointer), yields nil, which omits the attribute.
func jsonValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return v
	}
	b, err := marshalCompact(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return string(b)
}

// Vals adds values to the request parameters. v is a JSON object source: a
// Values, a map, a struct, or a string used verbatim (see JS).
func Vals(v any) vdom.Attr { return attr("vals", jsonValue(v)) }

// Headers adds request headers. v takes the same forms as in Vals.
func Headers(v any) vdom.Attr { return attr("headers", jsonValue(v)) }

// =============================================================================
// hx-request
// =============================================================================

type requestConfig struct {
	timeout     *time.Duration
	credentials *bool
	noHeaders   *bool
}

// RequestOption configures Request.
type RequestOption func(*requestConfig)

// Timeout sets the request timeout.
func Timeout(d time.Duration) RequestOption {
	return func(c *requestConfig) { c.timeout = &d }
}

// Credentials sends credentials with cross-origin requests.
func Credentials(enabled bool) RequestOption {
	return func(c *requestConfig) { c.credentials = &enabled }
}

// NoHeaders strips the HX- headers from the request.
func NoHeaders(enabled bool) RequestOption {
	return func(c *requestConfig) { c.noHeaders = &enabled }
}

// Request configures the request itself. Only options that were given appear
// in the JSON, in the order timeout, credentials, noHeaders.
func Request(opts ...RequestOption) vdom.Attr {
	var c requestConfig
	for _, opt := range opts {
		opt(&c)
	}

	values := Values{}
	if c.timeout != nil {
		values = append(values, KV{"timeout", c.timeout.Milliseconds()})
	}
	if c.credentials != nil {
		values = append(values, KV{"credentials", *c.credentials})
	}
	if c.noHeaders != nil {
		values = append(values, KV{"noHeaders", *c.noHeaders})
	}
	return attr("request", jsonValue(values))
}
