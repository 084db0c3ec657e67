package schedule

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// unaccent maps the accented vowels a passphrase may contain to their base letter.
// Other accents (circumflex, tilde on vowels, ...) are left alone and then
// dropped by keep.
func unaccent(r rune) rune {
	switch r {
	case 'à', 'á', 'ä':
		return 'a'
	case 'è', 'é', 'ë':
		return 'e'
	case 'ì', 'í', 'ï':
		return 'i'
	case 'ò', 'ó', 'ö':
		return 'o'
	case 'ù', 'ú', 'ü':
		return 'u'
	}
	return r
}

// keep reports whether r survives normalization
func keep(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == 'ç' || r == 'ñ'
}

// Normalize lowercases the passphrase, strips the accents of the vowels
// and removes every rune that is not a basic Latin letter, ç or ñ.
// The result may be empty.
func Normalize(passphrase string) ([]rune, error) {
	// the chain holds per-call state, so it is never shared
	t := transform.Chain(
		cases.Lower(language.Und),
		runes.Map(unaccent),
		runes.Remove(runes.Predicate(func(r rune) bool { return !keep(r) })),
	)
	s, _, err := transform.String(t, passphrase)
	if err != nil {
		return nil, fmt.Errorf("normalize passphrase: %w", err)
	}
	return []rune(s), nil
}
