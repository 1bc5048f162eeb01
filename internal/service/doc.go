// Package service implements the provider registry.
//
// Providers register a service definition and execute tools by ID.
// Tool IDs use "service.tool" notation; the registry routes execution
// to the owning provider by prefix.
package service
