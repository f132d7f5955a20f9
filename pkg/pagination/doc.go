// Package pagination provides utilities for the cursor-based list operations
// of the protocol: prompts/list, resources/list, resources/templates/list
// and tools/list.
//
// Cursors are opaque to clients. This package produces and consumes one
// concrete encoding (base64 over a position payload) that a server can use;
// a client only ever forwards the cursor it received.
//
// # Serving a page
//
//	import (
//	    "github.com/ajitpratap0/mcp-schema-go/pkg/pagination"
//	    "github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
//	)
//
//	func (s *catalog) ListTools(params *protocol.PaginatedParams) (*protocol.ListToolsResult, error) {
//	    start, end, next, err := pagination.Page(len(s.tools), params, pagination.DefaultLimit)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &protocol.ListToolsResult{
//	        Tools:      s.tools[start:end],
//	        NextCursor: next,
//	    }, nil
//	}
//
// # Walking every page
//
//	collector := pagination.NewCollector()
//	for collector.HasMore {
//	    result, err := list(collector.NextParams())
//	    if err != nil {
//	        return err
//	    }
//	    collector.Update(result.NextCursor, len(result.Tools))
//	}
package pagination
