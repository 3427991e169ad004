// Package posts turns markdown files from a GitHub repository into blog
// records.
//
// Each request re-ingests the repository: the contents listing is filtered
// to markdown files, every file is downloaded and parsed, and the resulting
// records are ordered newest first. When no credential is configured, the
// remote is unreachable, or nothing parses, the built-in fallback posts are
// served instead. Ingestion never fails; a single bad file is skipped.
package posts
