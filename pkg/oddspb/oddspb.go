// Package oddspb holds the wire definition of AnalyzerService, the gRPC
// front door for the Odds analyzer (cmd/oddsd). Rather than shipping
// protoc-generated stubs, the service and message descriptors are parsed
// from the embedded odds.proto at package init time via
// jhump/protoreflect's protoparse, and requests/responses are built as
// *dynamic.Message values. This mirrors the teacher's own proto handling
// (internal/evaluator/builtins_grpc.go: grpcLoadProto parses a .proto with
// protoparse.Parser, and grpcRegister/HandleUnary marshal RPCs through
// dynamic.NewMessage rather than generated types) rather than introducing a
// second, incompatible proto idiom.
package oddspb

import (
	_ "embed"
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
)

//go:embed odds.proto
var protoSource string

const protoFileName = "odds.proto"

var (
	fileDescriptor  *desc.FileDescriptor
	serviceDescName = "odds.v1.AnalyzerService"
	methodDescName  = "Analyze"
)

func init() {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			protoFileName: protoSource,
		}),
	}
	fds, err := parser.ParseFiles(protoFileName)
	if err != nil {
		panic(fmt.Sprintf("oddspb: failed to parse embedded %s: %v", protoFileName, err))
	}
	fileDescriptor = fds[0]
}

// FileDescriptor returns the parsed descriptor for odds.proto; cmd/oddsd
// uses its name as the grpc.ServiceDesc metadata.
func FileDescriptor() *desc.FileDescriptor {
	return fileDescriptor
}

// ServiceDescriptor returns AnalyzerService's descriptor.
func ServiceDescriptor() *desc.ServiceDescriptor {
	sd := fileDescriptor.FindService(serviceDescName)
	if sd == nil {
		panic("oddspb: " + serviceDescName + " missing from parsed descriptor")
	}
	return sd
}

// MethodDescriptor returns AnalyzerService.Analyze's descriptor.
func MethodDescriptor() *desc.MethodDescriptor {
	md := ServiceDescriptor().FindMethodByName(methodDescName)
	if md == nil {
		panic("oddspb: " + methodDescName + " missing from " + serviceDescName)
	}
	return md
}

func messageDescriptor(name string) *desc.MessageDescriptor {
	md := fileDescriptor.FindMessage("odds.v1." + name)
	if md == nil {
		panic("oddspb: message odds.v1." + name + " not found")
	}
	return md
}

// NewAnalyzeRequest returns an empty AnalyzeRequest dynamic message.
func NewAnalyzeRequest() *dynamic.Message {
	return dynamic.NewMessage(messageDescriptor("AnalyzeRequest"))
}

// NewAnalyzeResponse returns an empty AnalyzeResponse dynamic message.
func NewAnalyzeResponse() *dynamic.Message {
	return dynamic.NewMessage(messageDescriptor("AnalyzeResponse"))
}

// AnalyzeRequest is the Go-native view of an AnalyzeRequest message.
type AnalyzeRequest struct {
	Source  string
	Prelude []string
}

// FromDynamic reads msg's fields into r.
func (r *AnalyzeRequest) FromDynamic(msg *dynamic.Message) error {
	source, err := msg.TryGetFieldByName("source")
	if err != nil {
		return err
	}
	r.Source, _ = source.(string)

	prelude, err := msg.TryGetFieldByName("prelude")
	if err != nil {
		return err
	}
	if items, ok := prelude.([]interface{}); ok {
		r.Prelude = make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				r.Prelude = append(r.Prelude, s)
			}
		}
	}
	return nil
}

// AnalyzeResponse is the Go-native view of an AnalyzeResponse message.
type AnalyzeResponse struct {
	OK             bool
	Formatted      string
	DiagnosticCode string
	Message        string
	Line           int32
	Column         int32
}

// ToDynamic renders r as a freshly-built AnalyzeResponse dynamic message.
func (r *AnalyzeResponse) ToDynamic() (*dynamic.Message, error) {
	msg := NewAnalyzeResponse()
	if err := msg.TrySetFieldByName("ok", r.OK); err != nil {
		return nil, err
	}
	if err := msg.TrySetFieldByName("formatted", r.Formatted); err != nil {
		return nil, err
	}
	if err := msg.TrySetFieldByName("diagnostic_code", r.DiagnosticCode); err != nil {
		return nil, err
	}
	if err := msg.TrySetFieldByName("message", r.Message); err != nil {
		return nil, err
	}
	if err := msg.TrySetFieldByName("line", r.Line); err != nil {
		return nil, err
	}
	if err := msg.TrySetFieldByName("column", r.Column); err != nil {
		return nil, err
	}
	return msg, nil
}
