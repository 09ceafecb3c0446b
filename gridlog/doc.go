// Package gridlog provides the three-level logger (SILENT, QUIET, VERBOSE)
// threaded through the decision procedures, replacing the original source's
// global verbosity flag and print pointer with an explicit, nil-safe value.
package gridlog
