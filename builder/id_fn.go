package builder

import "github.com/katalvlaran/hydronet/core"

// IDFn maps a point, identified by its kind and its kind-local ID, to a graph
// node ID. It must be pure and injective across kinds.
type IDFn func(kind core.Kind, pointID string) string

// Namespaces used by NamespacedID.
const (
	ReservoirNamespace = "reservoir"
	CriticalNamespace  = "critical"
)

// NamespacedID renders "reservoir:<id>" or "critical:<id>".
func NamespacedID(kind core.Kind, pointID string) string {
	switch kind {
	case core.KindReservoir:
		return ReservoirNamespace + ":" + pointID
	case core.KindCriticalPoint:
		return CriticalNamespace + ":" + pointID
	default:
		return kind.String() + ":" + pointID
	}
}

// PrefixIDFn returns an IDFn that prepends reservoirPrefix or criticalPrefix,
// e.g. PrefixIDFn("embalse_", "punto_") yields "embalse_3" and "punto_3".
// Panics if the prefixes are equal, since IDs of the two kinds would collide.
func PrefixIDFn(reservoirPrefix, criticalPrefix string) IDFn {
	if reservoirPrefix == criticalPrefix {
		panic("builder: PrefixIDFn: prefixes must differ")
	}
	return func(kind core.Kind, pointID string) string {
		if kind == core.KindReservoir {
			return reservoirPrefix + pointID
		}

		return criticalPrefix + pointID
	}
}
