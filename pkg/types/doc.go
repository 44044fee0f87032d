// Package types defines the GlovoAdmin entity types, collection names,
// standard errors, and the Store and Notifier interfaces shared by the
// storage backends, the admin panel, and the CLI.
package types
