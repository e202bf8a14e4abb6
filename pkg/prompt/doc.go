// Package prompt implements the interactive entity builder: a survey
// backed terminal flow that assembles an EntitySchema question by
// question, abstracted behind a driver interface for testing.
package prompt
