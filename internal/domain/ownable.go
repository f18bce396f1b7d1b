package domain

// ResourceKind names the resource types exposed by the API.
type ResourceKind string

// Resource kinds.
const (
	KindUser          ResourceKind = "user"
	KindAdvertisement ResourceKind = "advertisement"
)

// Ownable is implemented by every resource that can only be mutated by its owner.
type Ownable interface {
	OwnerID() int64
}

// UserRef identifies a user resource by id without loading it.
// Ownership of a user resource never needs a lookup: the owner is the user itself.
type UserRef int64

// OwnerID implements Ownable.
func (r UserRef) OwnerID() int64 {
	return int64(r)
}
