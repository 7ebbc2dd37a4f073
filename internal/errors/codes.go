package errors

// Code is the transport-level category of an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason identifies the domain rule an operation tripped over. Operators see
// the reason; clients branch on it.
type Reason string

// Domain reasons
const (
	ReasonNone                  Reason = ""
	ReasonReadOnlyTarget        Reason = "READ_ONLY_TARGET"
	ReasonInvalidModifierKind   Reason = "INVALID_MODIFIER_KIND"
	ReasonIncompatibleCategory  Reason = "INCOMPATIBLE_CATEGORY"
	ReasonDuplicateModifier     Reason = "DUPLICATE_MODIFIER"
	ReasonEmptySlot             Reason = "EMPTY_SLOT"
	ReasonPermissionDenied      Reason = "PERMISSION_DENIED"
	ReasonInvalidSeedSource     Reason = "INVALID_SEED_SOURCE"
	ReasonCollectionUnavailable Reason = "COLLECTION_UNAVAILABLE"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// reasonCodes is the fixed reason to code mapping
var reasonCodes = map[Reason]Code{
	ReasonReadOnlyTarget:        CodeFailedPrecondition,
	ReasonInvalidModifierKind:   CodeInvalidArgument,
	ReasonIncompatibleCategory:  CodeFailedPrecondition,
	ReasonDuplicateModifier:     CodeAlreadyExists,
	ReasonEmptySlot:             CodeFailedPrecondition,
	ReasonPermissionDenied:      CodePermissionDenied,
	ReasonInvalidSeedSource:     CodeInvalidArgument,
	ReasonCollectionUnavailable: CodeUnavailable,
}

// Code returns the code a reason is reported with
func (r Reason) Code() Code {
	if c, ok := reasonCodes[r]; ok {
		return c
	}
	return CodeInternal
}
