// Package domain contains the shared types the rest of the service is built
// around: the normalized TaskInput record, the uniform TaskResult, backend
// identifiers, and the error taxonomy (sentinels, ValidationError, APIError).
package domain
