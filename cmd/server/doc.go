// Command server runs the numerics HTTP service.
//
// Configuration comes from the environment (see internal/infrastructure/config);
// the -port and -host flags take precedence when set.
package main
