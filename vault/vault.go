// Package vault keeps obfuscated payloads under short identifiers and
// reveals them with a passphrase.
package vault

import (
	"Xifra"
	"Xifra/pipeline"
	"fmt"
	"sort"
)

// Table maps an identifier to an obfuscated payload
type Table map[string]string

// Lookup returns the payload stored under id. An unknown id yields ("", false).
func (t Table) Lookup(id string) (string, bool) {
	payload, ok := t[id]
	return payload, ok
}

// Reveal decodes the payload stored under id with passphrase.
// An unknown id yields "" and an error wrapping Xifra.ErrUnknownKey.
func (t Table) Reveal(passphrase, id string) (string, error) {
	return t.RevealWithLogger(passphrase, id, Xifra.NewLogger(Xifra.DEBUG))
}

// RevealWithLogger is Reveal with the pipeline traced to logger
func (t Table) RevealWithLogger(passphrase, id string, logger Xifra.Logger) (string, error) {
	payload, ok := t.Lookup(id)
	if !ok {
		return "", fmt.Errorf("vault: reveal %q: %w", id, Xifra.ErrUnknownKey)
	}
	p, err := pipeline.NewWithLogger(passphrase, logger)
	if err != nil {
		return "", fmt.Errorf("vault: reveal %q: %w", id, err)
	}
	text, err := p.Decode(payload)
	if err != nil {
		return "", fmt.Errorf("vault: reveal %q: %w", id, err)
	}
	return text, nil
}

// Seal encodes text with passphrase and stores it under id,
// replacing any previous payload. A nil Table cannot store anything.
func (t Table) Seal(passphrase, id, text string) error {
	if t == nil {
		return fmt.Errorf("vault: seal %q: nil table: %w", id, Xifra.ErrInvalidParameter)
	}
	payload, err := pipeline.Encode(text, passphrase)
	if err != nil {
		return fmt.Errorf("vault: seal %q: %w", id, err)
	}
	t[id] = payload
	return nil
}

// IDs returns the stored identifiers in sorted order
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
