package responder

import (
	"slices"
	"time"
)

// Variant is a named delay preset.
type Variant struct {
	// Name identifies the preset on the command line.
	Name string
	// Delay is how long every request is held before the acknowledgement is sent.
	Delay time.Duration
	// InspectBody enables printing of the request payload.
	InspectBody bool
}

var (
	// Short holds requests for five seconds and prints their payload.
	Short = Variant{Name: "short", Delay: 5 * time.Second, InspectBody: true}
	// Long holds requests for five minutes and never reads their body.
	Long = Variant{Name: "long", Delay: 300 * time.Second}
)

// Variants returns the available presets.
func Variants() []Variant {
	return []Variant{Short, Long}
}

// VariantNames returns the names of the available presets.
func VariantNames() []string {
	var names []string
	for _, v := range Variants() {
		names = append(names, v.Name)
	}
	return names
}

// LookupVariant resolves a preset by name.
func LookupVariant(name string) (Variant, error) {
	variants := Variants()
	idx := slices.IndexFunc(variants, func(v Variant) bool { return v.Name == name })
	if idx == -1 {
		return Variant{}, &UnknownVariantError{Name: name}
	}
	return variants[idx], nil
}
