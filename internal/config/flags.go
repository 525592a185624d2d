// internal/config/flags.go
package config

import "flag"

// ParseFlags overrides s with command line flags. Flags default to the
// values already in s, so the environment stays the fallback. -layout wins
// over the layout implied by -variant only when given explicitly.
func (s *Settings) ParseFlags(fs *flag.FlagSet, args []string) error {
	variant := fs.String("variant", s.Variant.Name, "economy variant (classic, sprint)")
	layout := fs.String("layout", s.Variant.Layout, "path layout (grid, scurve)")
	seed := fs.Int64("seed", s.Seed, "PRNG seed, 0 for time based")
	towers := fs.String("towers", s.TowersPath, "JSON file with tower definitions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *variant != s.Variant.Name {
		v, err := VariantByName(*variant)
		if err != nil {
			return err
		}
		s.Variant = v
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "layout" {
			s.Variant.Layout = *layout
		}
	})
	s.Seed = *seed
	s.TowersPath = *towers
	return nil
}
