// Package phonetic spells text out in the ICAO radiotelephony alphabet.
// A Converter maps each character of its input to the corresponding
// spoken word ('A' becomes "Alfa", '9' becomes "Nine") and rejects input
// containing characters outside the alphabet.
package phonetic
