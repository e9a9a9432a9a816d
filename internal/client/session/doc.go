// Package session holds the authenticated-user context of the client.
//
// A Controller is created once by the application and passed to every
// screen that gates content on authentication. Its lifecycle is
//
//	init -> authenticated <-> unauthenticated -> teardown
//
// Sign-in accepts only the demo credential pair through DemoVerifier; it is
// a placeholder for a real credential check, not an authentication scheme.
// Sign-up accepts any plausible email with a password of at least four
// characters. Both wait an artificial delay before the session changes.
package session
