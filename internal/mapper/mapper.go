// Package mapper holds the projection rules between persisted entities and the
// public request/response shapes. Functions here are pure; identity and audit
// fields are never read from requests.
package mapper

// overlay copies *src into *dst when the request carried the field.
func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
