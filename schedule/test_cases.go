package schedule

import "Xifra/transform"

type step struct {
	kind transform.Kind
	size int
	key  int64
}

// TestContext is a passphrase with the schedule it must derive
type TestContext struct {
	passphrase string
	steps      []step
}

var testVector = []TestContext{
	{
		passphrase: "",
		steps:      nil,
	},
	{
		passphrase: "1234 !?",
		steps:      nil,
	},
	{
		// c=99 l=108 a=97 u=117
		passphrase: "clau",
		steps: []step{
			{transform.XOR, 4, 703},
			{transform.Add, 5, 689},
		},
	},
	{
		// accents, case and punctuation do not matter
		passphrase: "C-L-À-Ú",
		steps: []step{
			{transform.XOR, 4, 703},
			{transform.Add, 5, 689},
		},
	},
	{
		// odd length: the last step falls back to an 8-bit block, 4 + 8%8
		passphrase: "a",
		steps: []step{
			{transform.XOR, 4, 689},
		},
	},
	{
		// the third step is a Shift and keeps its raw key and size
		passphrase: "abcdef",
		steps: []step{
			{transform.XOR, 10, 689},
			{transform.Add, 4, 703},
			{transform.Shift, 106, 102},
		},
	},
	{
		// ç=231 ñ=241
		passphrase: "ççññ",
		steps: []step{
			{transform.XOR, 7, 1627},
			{transform.Add, 9, 1697},
		},
	},
	{
		passphrase: "abcdefg",
		steps: []step{
			{transform.XOR, 10, 689},
			{transform.Add, 4, 703},
			{transform.Shift, 106, 102},
			{transform.XOR, 4, 731},
		},
	},
}
