// Package validation checks raw terminal input against rule sets and drives
// the ask-until-valid loop shared by every prompt in the trainer.
//
// Rules are evaluated with go-playground/validator tags. As with the input
// rules of most web frameworks, an empty response only reports "required":
// the other rules apply to non-empty input.
package validation
