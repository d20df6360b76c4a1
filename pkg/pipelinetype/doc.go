// Package pipelinetype provides the closed set of machine-learning task categories ("pipeline types") a model can be
// tagged with, together with a human-readable label for each.
//
// Types are grouped by domain (natural-language processing, audio, computer vision). Within a domain they are declared
// by decreasing specificity. Catalogs rely on that order to pick a default category for a model that does not declare
// one, see Default.
//
// The registry is built once at package initialisation and never mutated, so every function in this package is safe
// for concurrent use.
package pipelinetype
