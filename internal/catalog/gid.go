package catalog

import "strings"

// Catalog entity kinds appearing in references.
const (
	// KindProduct identifies a material-level reference.
	KindProduct = "Product"
	// KindVariant identifies a variant-level reference.
	KindVariant = "ProductVariant"
)

const refPrefix = "gid://shopify/"

// ParseRef splits an opaque catalog reference of the form
// gid://shopify/{EntityType}/{numeric-id} into its entity kind and numeric
// suffix. Only those two segments are semantically meaningful to this
// service; everything else in the reference is opaque.
func ParseRef(ref string) (kind, id string, ok bool) {
	if !strings.HasPrefix(ref, refPrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(ref, refPrefix)
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// IsVariantRef reports whether ref names a variant-level entity.
func IsVariantRef(ref string) bool {
	kind, _, ok := ParseRef(ref)
	return ok && kind == KindVariant
}
