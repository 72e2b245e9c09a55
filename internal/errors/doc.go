// Package errors provides coded errors for the MapFantasai character form.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.InvalidArgumentf("unknown ability %q", name).
//	    WithMeta("suggestion", "strength")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := sink.Handoff(ctx, c); err != nil {
//	    return errors.Wrap(err, "failed to hand off character")
//	}
//
// # Validation Errors
//
// The ValidationBuilder collects field problems in the order they were found:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", draft.Name, vb)
//	if err := vb.Build(); err != nil {
//	    fields := errors.InvalidFields(err) // ["name"]
//	}
//
// # gRPC Integration
//
// ToGRPCError and FromGRPCError convert in both directions. Validation failures
// travel as google.rpc.BadRequest field violations, other metadata as
// google.rpc.ErrorInfo.
//
// # Layer Guidelines
//
// Entities and engine code panic on caller errors (an ability or tag list that
// cannot exist). Orchestrators return InvalidArgument for user input problems.
// Handlers parse names from the wire and convert errors with ToGRPCError.
package errors
