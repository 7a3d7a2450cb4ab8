// Command oddsd runs the Odds analyzer as a gRPC daemon, so editor tooling
// can call AnalyzerService.Analyze out-of-process instead of linking
// pkg/odds directly. Grounded on the teacher's gRPC server wiring
// (internal/evaluator/builtins_grpc.go: builtinGrpcServer/Register/Serve),
// generalized from an in-language builtin triple into a standalone command
// that serves this repo's own analyzer instead of a user-supplied
// implementation object.
package main

import (
	"context"
	"flag"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/alexandramedway/odds/pkg/odds"
	"github.com/alexandramedway/odds/pkg/oddspb"
)

func main() {
	addr := flag.String("addr", ":7770", "address to listen on")
	flag.Parse()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("oddsd: listen on %s: %v", *addr, err)
	}

	server := grpc.NewServer()
	registerAnalyzerService(server)
	reflection.Register(server)

	log.Printf("oddsd: serving %s on %s", oddspb.ServiceDescriptor().GetFullyQualifiedName(), *addr)
	if err := server.Serve(lis); err != nil {
		log.Fatalf("oddsd: serve: %v", err)
	}
}

// registerAnalyzerService wires oddspb's dynamic method descriptor to a
// grpc.ServiceDesc, the same pattern builtinGrpcRegister uses to expose a
// user-supplied implementation: one grpc.MethodDesc per RPC, each decoding
// into a *dynamic.Message built from the parsed .proto rather than a
// protoc-generated type.
func registerAnalyzerService(server *grpc.Server) {
	sd := oddspb.ServiceDescriptor()
	md := oddspb.MethodDescriptor()

	desc := &grpc.ServiceDesc{
		ServiceName: sd.GetFullyQualifiedName(),
		HandlerType: (*interface{})(nil),
		Metadata:    oddspb.FileDescriptor().GetName(),
		Methods: []grpc.MethodDesc{
			{
				MethodName: md.GetName(),
				Handler: func(_ interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					return handleAnalyze(ctx, dec)
				},
			},
		},
	}
	server.RegisterService(desc, nil)
}

func handleAnalyze(_ context.Context, dec func(interface{}) error) (interface{}, error) {
	reqMsg := oddspb.NewAnalyzeRequest()
	if err := dec(reqMsg); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode request: %v", err)
	}

	var req oddspb.AnalyzeRequest
	if err := req.FromDynamic(reqMsg); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "read request fields: %v", err)
	}

	resp := analyze(req)
	respMsg, err := resp.ToDynamic()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return respMsg, nil
}

func analyze(req oddspb.AnalyzeRequest) oddspb.AnalyzeResponse {
	result, err := odds.Analyze(req.Source, odds.Options{ExtraPrelude: req.Prelude})
	if err != nil {
		resp := oddspb.AnalyzeResponse{OK: false, Message: err.Error()}
		if diag, ok := odds.AsDiagnostic(err); ok {
			resp.DiagnosticCode = diag.Code.String()
			resp.Line = int32(diag.Token.Line)
			resp.Column = int32(diag.Token.Column)
		}
		return resp
	}
	return oddspb.AnalyzeResponse{OK: true, Formatted: odds.Format(result)}
}
