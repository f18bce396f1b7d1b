// Package service contains the application use cases for users and
// advertisements. Services coordinate the stores defined in internal/store,
// apply transactional boundaries where an operation reads before it writes,
// and translate lower-level failures into errors the API layer understands.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete storage implementation.
package service
