// Package errors is the structured error type shared by every layer of the
// simulator outside the pure damage engine.
//
// Errors carry a Code, a user facing Message, an optional Cause and free-form
// metadata:
//
//	err := errors.NotFound("creature not found").
//	    WithMeta("creature_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load creature")
//	}
//
// Input validation collects every offending field before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateNonNegative("weapon.attack", eq.Attack, vb)
//	errors.ValidateFraction("weapon.critical_rate", eq.CriticalRate, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Repositories return NotFound/InvalidArgument, orchestrators validate and wrap,
// and gRPC handlers convert with ToGRPCError. Clients turn a status back into an
// *Error with FromGRPCError.
package errors
