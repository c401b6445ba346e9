// Package domain contains the core entities of the flashcard trainer: cards,
// the answers recorded against them, and the derived progress view that
// classifies each card by its latest answer. It is independent of storage
// and of the terminal that drives it.
package domain
