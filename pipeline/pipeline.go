// Package pipeline encodes text into its obfuscated form under a passphrase
// and decodes it back.
package pipeline

import (
	"Xifra"
	"Xifra/bitcodec"
	"Xifra/schedule"
	"fmt"
)

// Pipeline holds the schedule of one passphrase
type Pipeline struct {
	sched  schedule.Schedule
	logger Xifra.Logger
}

// New derives the schedule of passphrase
func New(passphrase string) (*Pipeline, error) {
	return NewWithLogger(passphrase, Xifra.NewLogger(Xifra.DEBUG))
}

// NewWithLogger derives the schedule of passphrase and traces the
// derivation, every step and every bit sequence to logger
func NewWithLogger(passphrase string, logger Xifra.Logger) (*Pipeline, error) {
	sched, err := schedule.DeriveWithLogger(passphrase, logger)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &Pipeline{
		sched:  sched,
		logger: logger,
	}, nil
}

// Schedule returns the schedule the pipeline runs
func (p *Pipeline) Schedule() schedule.Schedule {
	return p.sched
}

// Encode runs text through every step of the schedule.
// Every code point of text has to be below 256.
func (p *Pipeline) Encode(text string) (string, error) {
	bits, err := bitcodec.TextToBits(text)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	p.logger.PrintBits("plain", bits)
	bits = p.sched.Encrypt(bits)
	p.logger.PrintBits("encoded", bits)
	out, err := bitcodec.BitsToText(bits)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return out, nil
}

// Decode runs text backwards through the schedule. A wrong passphrase is
// not an error: it decodes to some other text.
func (p *Pipeline) Decode(text string) (string, error) {
	bits, err := bitcodec.TextToBits(text)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	p.logger.PrintBits("encoded", bits)
	bits = p.sched.Decrypt(bits)
	p.logger.PrintBits("plain", bits)
	out, err := bitcodec.BitsToText(bits)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// Encode derives the schedule of passphrase and encodes text with it
func Encode(text, passphrase string) (string, error) {
	p, err := New(passphrase)
	if err != nil {
		return "", err
	}
	return p.Encode(text)
}

// Decode derives the schedule of passphrase and decodes text with it
func Decode(text, passphrase string) (string, error) {
	p, err := New(passphrase)
	if err != nil {
		return "", err
	}
	return p.Decode(text)
}
