package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// maxStdioMessage bounds a single line on the stdio transport.
const maxStdioMessage = 4 << 20

// ServeStdio reads newline-delimited JSON-RPC messages from r and writes one
// response line per answered request to w. It returns nil on EOF or when ctx
// is done.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStdioMessage)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		reqCtx := WithCorrelationID(ctx, uuid.NewString())
		resp := s.HandleMessage(reqCtx, line)
		if resp == nil {
			continue
		}

		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
