// Package store defines the persistence contracts used by the services.
// Repository is generic over the entity and its partial-update patch; the
// user and advertisement stores extend it with entity-specific lookups.
// Implementations live in internal/platform/postgres.
package store
