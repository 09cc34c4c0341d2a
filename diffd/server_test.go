package diffd

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"go.lsp.dev/jsonrpc2"
)

func startTestServer(t *testing.T) (*Server, jsonrpc2.Conn) {
	t.Helper()
	ctx := context.Background()
	s := New(&Spec{
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Addr: "127.0.0.1:0",
	})
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	conn, err := net.Dial("tcp", s.Addr())
	if err != nil {
		t.Fatal(err)
	}
	rpc := jsonrpc2.NewConn(jsonrpc2.NewStream(conn))
	rpc.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	t.Cleanup(func() { rpc.Close() })
	return s, rpc
}

func TestServerSummary(t *testing.T) {
	_, rpc := startTestServer(t)
	params := &CompareParams{
		AName: "a", AText: "line one\nline two\n",
		BName: "b", BText: "line one\nline three\n",
	}
	var res SummaryResult
	if _, err := rpc.Call(context.Background(), MethodSummary, params, &res); err != nil {
		t.Fatal(err)
	}
	if res.Summary.Equal != 1 || res.Summary.Replace != 1 {
		t.Errorf("summary %+v", res.Summary)
	}
	if res.Percent != 50.0 {
		t.Errorf("percent %v", res.Percent)
	}
	if len(res.Spans) != 2 {
		t.Errorf("spans %+v", res.Spans)
	}
}

func TestServerUnified(t *testing.T) {
	_, rpc := startTestServer(t)
	params := &CompareParams{
		AName: "a", AText: "same\n",
		BName: "b", BText: "same\n",
	}
	var res UnifiedResult
	if _, err := rpc.Call(context.Background(), MethodUnified, params, &res); err != nil {
		t.Fatal(err)
	}
	if res.Diff != "" {
		t.Errorf("diff of equal texts: %q", res.Diff)
	}
}

func TestServerUnknownMethod(t *testing.T) {
	_, rpc := startTestServer(t)
	var res any
	if _, err := rpc.Call(context.Background(), "diff/nope", &CompareParams{}, &res); err == nil {
		t.Error("no error for unknown method")
	}
}
