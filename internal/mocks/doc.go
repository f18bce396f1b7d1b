// Package mocks provides centralized mock implementations for testing.
//
// Two styles are offered:
//
//   - MemoryDB with MockUserStore and MockAdvertisementStore: in-memory stores
//     that keep the uniqueness and cascade semantics of the real schema, for
//     end-to-end handler tests.
//   - TestifyMockUserStore, TestifyMockAdvertisementStore: testify/mock based
//     stubs for asserting exact interactions.
//
// Usage:
//
//	db := mocks.NewMemoryDB()
//	users := mocks.NewMockUserStore(db, mocks.PlainHasher{})
//	ads := mocks.NewMockAdvertisementStore(db)
package mocks
