/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx is the gRPC counterpart of httpx: it turns an error and its
// errinfo.ErrorInfo into a gRPC status whose details carry the error id, and
// provides server interceptors that do so for handler errors.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/apis"
	"dirpx.dev/errinfo/internal/metrics"
	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// CodeFunc picks the gRPC code for a handler error.
type CodeFunc func(err error) codes.Code

// Status logs err at error level and builds a status with code c. The
// status message is the code name; the details carry the error id as a
// google.rpc.RequestInfo and a google.rpc.ErrorInfo. The location is only
// logged.
func Status(c codes.Code, err apis.Describable, info errinfo.ErrorInfo) *status.Status {
	return StatusCtx(context.Background(), c, err, info)
}

// StatusCtx is Status with a request context for the log line.
func StatusCtx(ctx context.Context, c codes.Code, err apis.Describable, info errinfo.ErrorInfo) *status.Status {
	fields := append(info.LogFields(),
		logx.Field("code", c.String()),
		logx.Field("error", fmt.Sprintf("%+v", err)),
	)
	logx.WithContext(ctx).Errorw("error status", fields...)
	metrics.IncGRPCStatus(c.String())

	base := status.New(c, c.String())
	req, ei := adapter.ToDetails(c, info)
	// WithDetails refuses codes.OK; the bare status is still valid then.
	if with, derr := base.WithDetails(req, ei); derr == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor converts handler errors that carry an ErrorInfo
// into statuses built by Status. Other errors are returned as they are.
//
// fn picks the code; when nil, DefaultCode is used.
func UnaryServerInterceptor(fn CodeFunc) grpc.UnaryServerInterceptor {
	if fn == nil {
		fn = DefaultCode
	}
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, fn, err)
	}
}

// StreamServerInterceptor is the streaming variant of UnaryServerInterceptor.
func StreamServerInterceptor(fn CodeFunc) grpc.StreamServerInterceptor {
	if fn == nil {
		fn = DefaultCode
	}
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(ss.Context(), fn, err)
	}
}

func convert(ctx context.Context, fn CodeFunc, err error) error {
	info, ok := errinfo.From(err)
	if !ok {
		return err
	}
	return StatusCtx(ctx, fn(err), err, info).Err()
}

type statusCoder interface {
	HTTPStatus() int
}

// DefaultCode keeps the code of an error that already carries a gRPC
// status, maps an HTTPStatus() int through CodeFromHTTP, and falls back to
// codes.Internal.
func DefaultCode(err error) codes.Code {
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		return CodeFromHTTP(sc.HTTPStatus())
	}
	return codes.Internal
}

// CodeFromHTTP maps an HTTP status onto the closest gRPC code.
func CodeFromHTTP(st int) codes.Code {
	switch st {
	case http.StatusOK:
		return codes.OK
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return codes.NotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusPreconditionFailed, http.StatusTooEarly:
		return codes.FailedPrecondition
	case http.StatusRequestedRangeNotSatisfiable:
		return codes.OutOfRange
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499:
		return codes.Canceled
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return codes.Unavailable
	}
	switch {
	case st >= 200 && st < 300:
		return codes.OK
	case st >= 500 && st < 600:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// ExtractErrorID returns the error id carried in the details of a gRPC
// error. Useful in clients and tests.
func ExtractErrorID(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	st, ok := status.FromError(err)
	if !ok {
		return "", false
	}
	for _, d := range st.Proto().GetDetails() {
		if id, ok := requestID(d); ok {
			return id, true
		}
	}
	return "", false
}

func requestID(d *anypb.Any) (string, bool) {
	ri := &errdetails.RequestInfo{}
	if !d.MessageIs(ri) {
		return "", false
	}
	if err := d.UnmarshalTo(ri); err != nil || ri.GetRequestId() == "" {
		return "", false
	}
	return ri.GetRequestId(), true
}
