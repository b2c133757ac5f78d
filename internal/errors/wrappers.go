package errors

import "fmt"

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s': %v", operation, path, cause)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s': %v", operation, templateName, cause)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName)
}

// NewConfigurationError reports an invalid configuration value
func NewConfigurationError(setting, message string) *BaseError {
	return Newf(ConfigurationErrorCode, "invalid %s: %s", setting, message).
		WithContext("setting", setting)
}

// WrapConfigurationError wraps an error raised while loading configuration
func WrapConfigurationError(source string, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, fmt.Sprintf("failed to load configuration from %s: %v", source, cause), cause).
		WithContext("source", source)
}
