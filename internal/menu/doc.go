// Package menu implements the main menu of the trainer: rendering the
// options, validating the user's choice and dispatching it to the create,
// list, practice, statistics and reset actions.
package menu
