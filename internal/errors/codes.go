package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error for callers and transports
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// codeInfo is how a code travels over each transport
type codeInfo struct {
	grpc codes.Code
	http int
	// retryable codes describe a transient state: a turn still in flight, a dead
	// interpreter being restarted, a store that is down
	retryable bool
}

var codeTable = map[Code]codeInfo{
	CodeOK:                 {grpc: codes.OK, http: http.StatusOK},
	CodeCanceled:           {grpc: codes.Canceled, http: http.StatusRequestTimeout},
	CodeInvalidArgument:    {grpc: codes.InvalidArgument, http: http.StatusBadRequest},
	CodeDeadlineExceeded:   {grpc: codes.DeadlineExceeded, http: http.StatusGatewayTimeout, retryable: true},
	CodeNotFound:           {grpc: codes.NotFound, http: http.StatusNotFound},
	CodeAlreadyExists:      {grpc: codes.AlreadyExists, http: http.StatusConflict},
	CodeFailedPrecondition: {grpc: codes.FailedPrecondition, http: http.StatusPreconditionFailed},
	CodeAborted:            {grpc: codes.Aborted, http: http.StatusConflict, retryable: true},
	CodeInternal:           {grpc: codes.Internal, http: http.StatusInternalServerError},
	CodeUnavailable:        {grpc: codes.Unavailable, http: http.StatusServiceUnavailable, retryable: true},
	CodeDataLoss:           {grpc: codes.DataLoss, http: http.StatusInternalServerError},
}

// fromGRPC inverts codeTable; unknown gRPC codes become CodeInternal
var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(codeTable))
	for c, info := range codeTable {
		m[info.grpc] = c
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the HTTP status the REST mirror answers with
func (c Code) HTTPStatus() int {
	if info, ok := codeTable[c]; ok {
		return info.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if info, ok := codeTable[c]; ok {
		return info.grpc
	}
	return codes.Unknown
}

// Retryable reports whether repeating the same request later may succeed
func (c Code) Retryable() bool {
	return codeTable[c].retryable
}

func codeFromGRPC(c codes.Code) Code {
	if code, ok := fromGRPC[c]; ok {
		return code
	}
	return CodeInternal
}
