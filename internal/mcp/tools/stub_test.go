package tools

import (
	"context"
	"net/url"
	"sync"

	"github.com/roivaz/biogrid-mcp/internal/biogrid"
	"github.com/roivaz/biogrid-mcp/internal/logging"
)

type upstreamCall struct {
	endpoint string
	params   url.Values
}

// stubUpstream returns canned rows and records every call.
type stubUpstream struct {
	mu           sync.Mutex
	calls        []upstreamCall
	interactions []biogrid.Interaction
	genes        []biogrid.Gene
	err          error
}

func (s *stubUpstream) Interactions(_ context.Context, params url.Values) ([]biogrid.Interaction, error) {
	s.record("interactions", params)
	if s.err != nil {
		return nil, s.err
	}
	return s.interactions, nil
}

func (s *stubUpstream) Genes(_ context.Context, params url.Values) ([]biogrid.Gene, error) {
	s.record("genes", params)
	if s.err != nil {
		return nil, s.err
	}
	return s.genes, nil
}

func (s *stubUpstream) record(endpoint string, params url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, upstreamCall{endpoint: endpoint, params: params})
}

func (s *stubUpstream) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubUpstream) last() upstreamCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func newTestDispatcher(up *stubUpstream) *Dispatcher {
	return NewDispatcher(up, logging.Discard())
}

func cannedInteractions() []biogrid.Interaction {
	return []biogrid.Interaction{
		{ID: "1", SymbolA: "TP53", SymbolB: "MDM2", ExperimentalSystem: "Two-hybrid", SystemType: "physical", PubMedID: "100"},
		{ID: "2", SymbolA: "TP53", SymbolB: "ATM", ExperimentalSystem: "Dosage Rescue", SystemType: "genetic", PubMedID: "200"},
		{ID: "3", SymbolA: "TP53", SymbolB: "EP300", ExperimentalSystem: "Affinity Capture-MS", SystemType: "Physical", PubMedID: "300"},
		{ID: "4", SymbolA: "TP53", SymbolB: "CHEK2", ExperimentalSystem: "Synthetic Lethality", SystemType: "GENETIC", PubMedID: "400"},
	}
}
