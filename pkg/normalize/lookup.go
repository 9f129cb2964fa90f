package normalize

import (
	"log"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
)

// Lookup reads one fact and normalizes it. A probe error and a value that does not
// normalize both end up as an absent field.
func Lookup[T any](facts probe.Facts, key probe.Key, normalizer func(probe.Raw) types.Field[T]) types.Field[T] {
	raw, err := facts.Lookup(key)
	if err != nil {
		if utils.IsVerbose() {
			log.Printf("%s unavailable: %v", key, err)
		}
		return types.Unavailable[T]()
	}

	field := normalizer(raw)
	if field.IsAbsent() && utils.IsVerbose() {
		log.Printf("%s unavailable: can not normalize %q", key, raw.String())
	}
	return field
}
