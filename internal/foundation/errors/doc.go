// Package errors provides the classified error type used across folio.
//
// A ClassifiedError carries a category (config, schema, filesystem, ...),
// a severity, a retry strategy and structured context. Errors are built
// through the fluent ErrorBuilder:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "write failed").
//		Fatal().
//		WithContext("path", rel).
//		Build()
//
// CLIErrorAdapter turns classified errors into exit codes and short
// user-facing messages for the folio command.
package errors
