// Package processor ties the spelling converter to the rest of the tool.
// It spells single texts and batch files, stores the results as card
// directories, voices them through an audio provider and exports Anki decks.
package processor
