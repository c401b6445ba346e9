// Package practice implements the practice session: evaluating progress
// over all cards, letting the user pick a question that still needs work,
// and recording and judging the answers given.
package practice
