// Package types defines the Record entity, the Store and RemoteSource
// interfaces, configuration, and standard errors for the Rolodex record
// cache.
package types
