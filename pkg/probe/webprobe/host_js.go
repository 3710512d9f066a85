//go:build js && wasm

package webprobe

import "syscall/js"

// HostIntl reads the zone from the global Intl object.
type HostIntl struct{}

func (HostIntl) ResolvedTimeZone() (zone string, ok bool) {
	// syscall/js panics when a JS call throws.
	defer func() {
		if recover() != nil {
			zone, ok = "", false
		}
	}()

	intl := js.Global().Get("Intl")
	if intl.Type() != js.TypeObject {
		return "", false
	}
	format := intl.Get("DateTimeFormat")
	if format.Type() != js.TypeFunction {
		return "", false
	}
	opts := format.New().Call("resolvedOptions")
	value := opts.Get("timeZone")
	if value.Type() != js.TypeString {
		return "", false
	}
	return value.String(), true
}
