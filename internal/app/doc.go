// Package app bootstraps one run of an extraction binary: configuration,
// executable-relative paths, structured logging, and tracing, torn down
// in reverse order by Shutdown. The three binaries differ only in which
// pipeline they run; everything around the pipeline lives here.
package app
