package pipeline

import (
	"Xifra"
	"testing"
)

func BenchmarkPipeline(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}
	texts, err := Xifra.RandomTextGen([]byte("benchmark"), 1, 256)
	if err != nil {
		b.Fatal(err)
	}
	text := texts[0]

	for _, passphrase := range passphrases {
		var p *Pipeline
		var encoded string

		b.Run(testString("New", passphrase, len(text)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p, _ = New(passphrase)
			}
		})

		b.Run(testString("Encode", passphrase, len(text)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				encoded, _ = p.Encode(text)
			}
		})

		b.Run(testString("Decode", passphrase, len(text)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Decode(encoded)
			}
		})
	}
}
