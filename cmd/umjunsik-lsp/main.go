// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"umjunsik/internal/lsp"
)

const lsName = "umjunsik" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("umjunsik.lsp.server")

	umjunsikHandler := lsp.NewUmjunsikHandler()

	handler = protocol.Handler{
		Initialize:                     umjunsikHandler.Initialize,
		Initialized:                    umjunsikHandler.Initialized,
		Shutdown:                       umjunsikHandler.Shutdown,
		SetTrace:                       umjunsikHandler.SetTrace,
		TextDocumentDidOpen:            umjunsikHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           umjunsikHandler.TextDocumentDidClose,
		TextDocumentDidChange:          umjunsikHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: umjunsikHandler.TextDocumentSemanticTokensFull,
		TextDocumentFormatting:         umjunsikHandler.TextDocumentFormatting,
		TextDocumentHover:              umjunsikHandler.TextDocumentHover,
	}

	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	// Serve over standard input/output, which is what most editors use
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
