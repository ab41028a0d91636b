// Package request parses item lists such as "Planks, 5; Stick, 2" into validated demands.
//
// Entries are separated by semicolons. Each entry is a name optionally followed by a comma
// and a positive quantity, which defaults to 1. Names are checked against a Matcher; unknown
// names are replaced by their closest match, and the replacement is reported as an Assumption.
// Every offending entry is collected into a single *Error.
package request
