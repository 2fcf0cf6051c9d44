// Package errors provides coded errors for the codequest engine and its transports.
//
// Every layer returns *Error values carrying a Code, a human readable message and
// optional metadata:
//
//	err := errors.NotFound("encounter not found").
//	    WithMeta("encounter_id", encounterID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save player")
//	}
//
// Orchestrators validate input with the ValidationBuilder and check game rules with
// FailedPrecondition (not enough skill points, weapon not owned) or Aborted (a battle
// turn is already in flight). Handlers convert errors for the wire with ToGRPCError
// or Code.HTTPStatus.
//
// Learner mistakes are not errors here. A submission that fails to execute or a stage
// whose validation output lacks the expected token is a normal game result and is
// reported through the combat outcome or stage result instead.
package errors
