package errors

// Convenience functions for common error patterns

// Config errors

func RootNotFound(path string) *SiteError {
	return New(CategoryConfig, "root path not found").
		WithContext("path", path)
}

func RootNotDirectory(path string) *SiteError {
	return New(CategoryConfig, "root path is not a directory").
		WithContext("path", path)
}

func OutputNotDirectory(path string) *SiteError {
	return New(CategoryConfig, "output path exists but is not a directory").
		WithContext("path", path)
}

func ConfigLoadFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, "failed to load configuration").
		WithContext("path", path)
}

// Tree and output I/O errors

func ReadFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, "failed to read").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, "failed to write").
		WithContext("path", path)
}

// Template errors

func TemplateParseFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryTemplate, "failed to parse template").
		WithContext("path", path)
}

func TemplateExecFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryTemplate, "failed to execute template").
		WithContext("path", path)
}

// Pipeline errors

func RenderFailed(category string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, "failed to render category").
		WithContext("category", category)
}

// Caller misuse

func UnsupportedOperation(op, file string) *SiteError {
	return New(CategoryUnsupported, "operation not supported for this document").
		WithContext("operation", op).
		WithContext("file", file)
}
