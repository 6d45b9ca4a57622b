package tools

import (
	"github.com/roivaz/biogrid-mcp/internal/biogrid"
	"github.com/roivaz/biogrid-mcp/internal/mcp/tools/types"
)

func normalizeInteractions(gene string, kind InteractionType, rows []biogrid.Interaction) types.InteractionsResult {
	edges := make([]types.Edge, 0, len(rows))
	for _, row := range rows {
		if !kind.Matches(row.SystemType) {
			continue
		}
		edges = append(edges, types.Edge{
			Source:             row.SymbolA,
			Target:             row.SymbolB,
			InteractionID:      row.ID,
			ExperimentalSystem: row.ExperimentalSystem,
			SystemType:         row.SystemType,
			PubMedID:           row.PubMedID,
		})
	}
	return types.InteractionsResult{
		QueryGene:       gene,
		InteractionType: string(kind),
		Count:           len(edges),
		Edges:           edges,
	}
}

func normalizeGenes(query string, rows []biogrid.Gene) types.GenesResult {
	genes := make([]types.Gene, 0, len(rows))
	for _, row := range rows {
		synonyms := row.Synonyms
		if synonyms == nil {
			synonyms = []string{}
		}
		genes = append(genes, types.Gene{
			BiogridID: row.ID,
			Symbol:    row.Symbol,
			Synonyms:  synonyms,
			TaxonID:   row.TaxonID,
			Organism:  row.Organism,
		})
	}
	return types.GenesResult{Query: query, Count: len(genes), Genes: genes}
}

func normalizeEdgeList(kind InteractionType, rows []biogrid.Interaction) types.EdgeListResult {
	pairs := make([][2]string, 0, len(rows))
	for _, row := range rows {
		if !kind.Matches(row.SystemType) {
			continue
		}
		pairs = append(pairs, [2]string{row.SymbolA, row.SymbolB})
	}
	return types.EdgeListResult{EdgeList: pairs, Count: len(pairs)}
}
