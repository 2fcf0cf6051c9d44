package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, detailErr := metaToStruct(customErr.Meta)
	if detailErr != nil {
		return st.Err()
	}
	withDetails, detailErr := st.WithDetails(details)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error back to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// metaToStruct converts metadata to a protobuf struct. Values structpb cannot
// represent natively are formatted as strings.
func metaToStruct(meta map[string]any) (*structpb.Struct, error) {
	fields := make(map[string]any, len(meta))
	for k, v := range meta {
		if _, err := structpb.NewValue(v); err != nil {
			fields[k] = fmt.Sprint(v)
			continue
		}
		fields[k] = v
	}
	return structpb.NewStruct(fields)
}
