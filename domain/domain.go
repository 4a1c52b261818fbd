// Package domain defines the media-kind tag used to disambiguate discrete
// sample partitions on the same object (spec.md §3, "Domain").
package domain

// Domain enumerates the media kinds a discrete partition can be keyed by.
// Other carries an arbitrary string tag for kinds the core does not name,
// an extension point that spec.md §9 directs implementers to leave present
// but otherwise unused.
type Domain struct {
	kind  Kind
	other string
}

// Kind is the closed tag of a Domain value.
type Kind int

const (
	Picture Kind = iota
	Audio
	Other
)

// NewPicture returns the picture domain.
func NewPicture() Domain { return Domain{kind: Picture} }

// NewAudio returns the audio domain.
func NewAudio() Domain { return Domain{kind: Audio} }

// NewOther returns an extension-point domain tagged with an arbitrary
// string.
func NewOther(tag string) Domain { return Domain{kind: Other, other: tag} }

// Kind returns the domain's tag.
func (d Domain) Kind() Kind { return d.kind }

// OtherTag returns the string tag for Kind() == Other; empty otherwise.
func (d Domain) OtherTag() string { return d.other }

// Equal reports whether d and other denote the same domain.
func (d Domain) Equal(other Domain) bool {
	if d.kind != other.kind {
		return false
	}
	if d.kind == Other {
		return d.other == other.other
	}
	return true
}

// String renders the domain for diagnostics.
func (d Domain) String() string {
	switch d.kind {
	case Picture:
		return "picture"
	case Audio:
		return "audio"
	default:
		return "other:" + d.other
	}
}
