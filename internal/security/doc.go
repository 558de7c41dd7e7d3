// Package security holds the request authorization rules and the password
// encoder used by the HTTP layer.
//
// A [RuleSet] is an ordered list of (method, path pattern, access) triples.
// Rules are evaluated top to bottom and the first matching rule decides.
// Patterns use the Ant-style syntax common to servlet security
// configuration:
//
//	/**          every path
//	/auth/**     /auth and everything below it
//	/api/*/me    exactly one segment in place of *
//	/file?.txt   exactly one character in place of ?
//
// Passwords are stored as bcrypt hashes through [PasswordEncoder].
package security
