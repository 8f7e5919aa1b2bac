// Package console adapts a terminal (or any reader/writer pair) to the
// session's input and output collaborators.
//
// Inbound plaintext is printed prefixed with "> " so it stands apart from
// what the local user types. Invalid UTF-8 is replaced with U+FFFD rather
// than passed through. Outbound input is consumed one line at a time; "\r\n"
// and "\n" terminators are normalised to a single "\n".
package console
