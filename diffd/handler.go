package diffd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/signadot/docdiff"
	"github.com/signadot/docdiff/align"
	"github.com/signadot/docdiff/debug"
	"github.com/signadot/docdiff/render"

	"go.lsp.dev/jsonrpc2"
)

const (
	MethodSummary = "diff/summary"
	MethodUnified = "diff/unified"
	MethodRows    = "diff/rows"
)

// CompareParams names and carries the two texts to compare.
type CompareParams struct {
	AName string `json:"aName"`
	AText string `json:"aText"`
	BName string `json:"bName"`
	BText string `json:"bText"`
}

type SummaryResult struct {
	Summary align.Summary `json:"summary"`
	Percent float64       `json:"percent"`
	Spans   []align.Span  `json:"spans"`
}

type UnifiedResult struct {
	Diff string `json:"diff"`
}

type RowsResult struct {
	Rows []render.Row `json:"rows"`
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("rpc %s %s\n", req.Method(), req.Params())
	}
	switch req.Method() {
	case MethodSummary, MethodUnified, MethodRows:
	default:
		return reply(ctx, nil, fmt.Errorf("%w: %q", jsonrpc2.ErrMethodNotFound, req.Method()))
	}
	var params CompareParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
	}
	res := docdiff.Compare(params.AName, params.AText, params.BName, params.BText)
	switch req.Method() {
	case MethodSummary:
		return reply(ctx, &SummaryResult{
			Summary: res.Summary,
			Percent: res.Summary.PercentDifferent(),
			Spans:   res.Spans,
		}, nil)
	case MethodUnified:
		return reply(ctx, &UnifiedResult{Diff: res.Unified()}, nil)
	default:
		return reply(ctx, &RowsResult{Rows: res.Rows()}, nil)
	}
}
