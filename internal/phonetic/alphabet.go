package phonetic

import "unicode/utf8"

// Entry is a single row of the spelling alphabet.
type Entry struct {
	Char rune
	Word string
}

// alphabet lists every supported character in canonical order.
var alphabet = [...]Entry{
	{'A', "Alfa"},
	{'B', "Bravo"},
	{'C', "Charlie"},
	{'D', "Delta"},
	{'E', "Echo"},
	{'F', "Foxtrot"},
	{'G', "Golf"},
	{'H', "Hotel"},
	{'I', "India"},
	{'J', "Juliett"},
	{'K', "Kilo"},
	{'L', "Lima"},
	{'M', "Mike"},
	{'N', "November"},
	{'O', "Oscar"},
	{'P', "Papa"},
	{'Q', "Quebec"},
	{'R', "Romeo"},
	{'S', "Sierra"},
	{'T', "Tango"},
	{'U', "Uniform"},
	{'V', "Victor"},
	{'W', "Whiskey"},
	{'X', "X-Ray"},
	{'Y', "Yankee"},
	{'Z', "Zulu"},
	{'0', "Zero"},
	{'1', "One"},
	{'2', "Two"},
	{'3', "Three"},
	{'4', "Four"}, // spoken "Fower" on air
	{'5', "Five"},
	{'6', "Six"},
	{'7', "Seven"},
	{'8', "Eight"},
	{'9', "Nine"}, // spoken "Niner" on air
	{' ', " "},
	{'.', "Stop"},
}

// AlphabetSize is the number of characters the alphabet covers.
const AlphabetSize = len(alphabet)

// wordTab indexes alphabet by character. Every key is ASCII, so a
// fixed-size table replaces a map; an empty string marks an unknown char.
var wordTab = func() [utf8.RuneSelf]string {
	var tab [utf8.RuneSelf]string
	for _, e := range alphabet {
		tab[e.Char] = e.Word
	}
	return tab
}()
