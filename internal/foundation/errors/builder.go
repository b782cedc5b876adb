package errors

// ErrorBuilder provides a fluent API for creating ClassifiedError values.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	retry    RetryStrategy
	message  string
	cause    error
	context  ErrorContext
}

// NewError starts a builder for category with message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		retry:    RetryNever,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError starts a builder that wraps cause.
func WrapError(cause error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.cause = cause
	return b
}

func (b *ErrorBuilder) WithSeverity(s ErrorSeverity) *ErrorBuilder {
	b.severity = s
	return b
}

func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

func (b *ErrorBuilder) Fatal() *ErrorBuilder { return b.WithSeverity(SeverityFatal) }

// UserAction marks the error as fixable only by the user (edit content, config, permissions).
func (b *ErrorBuilder) UserAction() *ErrorBuilder {
	b.retry = RetryUserAction
	return b
}

// Build creates the ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		retry:    b.retry,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// ConfigError creates a configuration error.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal().UserAction()
}

// ValidationError creates an invalid-usage error.
func ValidationError(message string) *ErrorBuilder {
	return NewError(CategoryValidation, message).Fatal().UserAction()
}

// SchemaError creates a content schema error. cause may be nil.
func SchemaError(cause error, message string) *ErrorBuilder {
	return WrapError(cause, CategorySchema, message).Fatal().UserAction()
}

// FileSystemError wraps a filesystem failure. folio does not tell transient
// and permanent I/O failures apart, so these are never retryable.
func FileSystemError(cause error, operation, path string) *ErrorBuilder {
	return WrapError(cause, CategoryFileSystem, operation+" failed").
		Fatal().
		WithContext("operation", operation).
		WithContext("path", path)
}

// GitError creates a git repository error.
func GitError(message string) *ErrorBuilder {
	return NewError(CategoryGit, message).Fatal()
}

// InternalError creates an internal error.
func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}
