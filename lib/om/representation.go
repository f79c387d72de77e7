package om

// --------------------------------------------------------------------------
// Remote Representations
// --------------------------------------------------------------------------

// Representation describes the shape of data a remote key currently holds.
type Representation int

const (
	ReprNone      Representation = iota // The key does not exist
	ReprString                          // Plain string value (also counters)
	ReprList                            // List (used by List and Deque)
	ReprSet                             // Unordered set
	ReprSortedSet                       // Sorted set
	ReprHash                            // Hash
	ReprStream                          // Stream (no wrapper available)
	ReprUnknown                         // Anything the store reports that is not listed above
)

// ParseRepresentation converts the reply of the TYPE command into a Representation.
func ParseRepresentation(s string) Representation {
	switch s {
	case "none":
		return ReprNone
	case "string":
		return ReprString
	case "list":
		return ReprList
	case "set":
		return ReprSet
	case "zset":
		return ReprSortedSet
	case "hash":
		return ReprHash
	case "stream":
		return ReprStream
	default:
		return ReprUnknown
	}
}

// String returns the name the store uses for the representation.
func (r Representation) String() string {
	switch r {
	case ReprNone:
		return "none"
	case ReprString:
		return "string"
	case ReprList:
		return "list"
	case ReprSet:
		return "set"
	case ReprSortedSet:
		return "zset"
	case ReprHash:
		return "hash"
	case ReprStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Exists reports whether the representation describes an existing key.
func (r Representation) Exists() bool {
	return r != ReprNone
}
