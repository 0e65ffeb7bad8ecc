package errors

// Convenience functions for common error patterns

// Toolchain errors

func ToolNotFound(tool, hint string) *BuildError {
	return New(CategoryToolchain, tool+" is not found. "+hint)
}

func PackageManifestMissing(path string) *BuildError {
	return New(CategoryToolchain, "toolchain package.json not found at "+path)
}

func InstallFailed(cause error) *BuildError {
	return Wrap(cause, CategoryToolchain, "failed to install npm dependencies")
}

// External tool invocation errors

func TailwindBuildFailed(cause error) *BuildError {
	return Wrap(cause, CategoryTailwind, "Tailwind CSS build failed")
}

func MinifyFailed(cause error) *BuildError {
	return Wrap(cause, CategoryMinify, "HTML minification failed")
}

// Filesystem errors

func ReadFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, "failed to read "+path)
}

func WriteFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, "failed to write "+path)
}

// Config errors

func ConfigNotFound(path string) *BuildError {
	return New(CategoryConfig, "configuration file not found: "+path)
}

func ConfigInvalid(cause error) *BuildError {
	return Wrap(cause, CategoryConfig, "configuration invalid")
}
