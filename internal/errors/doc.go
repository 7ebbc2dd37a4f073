// Package errors provides the structured error type used across hol-api.
//
// Every error carries a Code (how the transport reports it) and, for rule
// violations of the refine and seed engines, a Reason naming the rule:
//
//	err := errors.ReadOnlyTarget("compendium weapons cannot be modified").
//	    WithMeta("weapon_id", weaponID)
//
//	if errors.HasReason(err, errors.ReasonEmptySlot) {
//	    // warn and carry on
//	}
//
// Wrap keeps the code, reason and metadata of a wrapped *Error and defaults
// to CodeInternal for anything else:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to persist weapon")
//	}
//
// Handlers convert with ToGRPCError; the reason travels as an
// errdetails.ErrorInfo and FromGRPCError restores it on the client side.
package errors
