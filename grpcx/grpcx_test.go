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

package grpcx_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/grpcx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type carried struct {
	info errinfo.ErrorInfo
}

func (e *carried) Error() string                { return "quota check failed" }
func (e *carried) ErrorInfo() errinfo.ErrorInfo { return e.info }
func (e *carried) HTTPStatus() int              { return http.StatusTooManyRequests }

func TestStatus_DetailsCarryIDNotLocation(t *testing.T) {
	info := errinfo.Capture("/srv/app/internal/quota/check.go", 21, 9)
	st := grpcx.Status(codes.NotFound, errors.New("no row"), info)

	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "NotFound", st.Message())

	var sawReq, sawInfo bool
	for _, d := range st.Details() {
		switch m := d.(type) {
		case *errdetails.RequestInfo:
			sawReq = true
			assert.Equal(t, info.ErrorID, m.GetRequestId())
		case *errdetails.ErrorInfo:
			sawInfo = true
			assert.Equal(t, "NOT_FOUND", m.GetReason())
			assert.Equal(t, adapter.Domain, m.GetDomain())
			assert.Equal(t, info.ErrorID, m.GetMetadata()[adapter.MetadataErrorID])
		}
	}
	assert.True(t, sawReq, "RequestInfo detail missing")
	assert.True(t, sawInfo, "ErrorInfo detail missing")
	assert.NotContains(t, fmt.Sprint(st.Proto()), "check.go")
}

func TestStatus_OKHasNoDetails(t *testing.T) {
	st := grpcx.Status(codes.OK, errors.New("odd"), errinfo.Info())
	assert.Equal(t, codes.OK, st.Code())
	assert.Empty(t, st.Details())
}

func TestExtractErrorID_RoundTrip(t *testing.T) {
	info := errinfo.Error()
	err := grpcx.Status(codes.Internal, errors.New("boom"), info).Err()

	id, ok := grpcx.ExtractErrorID(err)
	require.True(t, ok)
	assert.Equal(t, info.ErrorID, id)

	_, ok = grpcx.ExtractErrorID(errors.New("plain"))
	assert.False(t, ok)
	_, ok = grpcx.ExtractErrorID(status.Error(codes.Internal, "no details"))
	assert.False(t, ok)
	_, ok = grpcx.ExtractErrorID(nil)
	assert.False(t, ok)
}

func TestUnaryServerInterceptor(t *testing.T) {
	icpt := grpcx.UnaryServerInterceptor(nil)
	info := errinfo.Warn()

	t.Run("carried error becomes status", func(t *testing.T) {
		handler := func(context.Context, any) (any, error) {
			return nil, fmt.Errorf("handler: %w", &carried{info: info})
		}
		_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/M"}, handler)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.ResourceExhausted, st.Code())

		id, ok := grpcx.ExtractErrorID(err)
		require.True(t, ok)
		assert.Equal(t, info.ErrorID, id)
	})

	t.Run("plain error passes through", func(t *testing.T) {
		plain := errors.New("plain")
		handler := func(context.Context, any) (any, error) { return nil, plain }
		_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
		assert.Same(t, plain, err)
	})

	t.Run("success passes through", func(t *testing.T) {
		handler := func(context.Context, any) (any, error) { return "ok", nil }
		resp, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})

	t.Run("custom code func", func(t *testing.T) {
		custom := grpcx.UnaryServerInterceptor(func(error) codes.Code { return codes.Unavailable })
		handler := func(context.Context, any) (any, error) { return nil, errinfo.Wrap(errors.New("x"), info) }
		_, err := custom(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s fakeStream) Context() context.Context { return s.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	icpt := grpcx.StreamServerInterceptor(nil)
	info := errinfo.Debug()

	handler := func(any, grpc.ServerStream) error {
		return errinfo.Wrap(errors.New("stream broke"), info)
	}
	err := icpt(nil, fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{}, handler)

	assert.Equal(t, codes.Internal, status.Code(err))
	id, ok := grpcx.ExtractErrorID(err)
	require.True(t, ok)
	assert.Equal(t, info.ErrorID, id)
	assert.False(t, strings.Contains(err.Error(), info.Location.File))
}

func TestDefaultCode(t *testing.T) {
	assert.Equal(t, codes.Internal, grpcx.DefaultCode(errors.New("x")))
	assert.Equal(t, codes.PermissionDenied, grpcx.DefaultCode(status.Error(codes.PermissionDenied, "no")))
	assert.Equal(t, codes.ResourceExhausted, grpcx.DefaultCode(&carried{}))
}

func TestCodeFromHTTP(t *testing.T) {
	tests := []struct {
		in   int
		want codes.Code
	}{
		{200, codes.OK},
		{204, codes.OK},
		{400, codes.InvalidArgument},
		{401, codes.Unauthenticated},
		{403, codes.PermissionDenied},
		{404, codes.NotFound},
		{409, codes.Aborted},
		{429, codes.ResourceExhausted},
		{499, codes.Canceled},
		{500, codes.Internal},
		{503, codes.Unavailable},
		{504, codes.DeadlineExceeded},
		{599, codes.Internal},
		{418, codes.Unknown},
	}
	for _, tt := range tests {
		if got := grpcx.CodeFromHTTP(tt.in); got != tt.want {
			t.Fatalf("CodeFromHTTP(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
