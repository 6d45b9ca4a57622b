package biogrid

import (
	"strings"

	"github.com/tidwall/gjson"
)

// nullMarker is how BioGRID renders an absent value.
const nullMarker = "-"

// Interaction is one reported interaction between two gene products. Values
// are kept as the opaque strings upstream sent.
type Interaction struct {
	ID                 string
	SymbolA            string
	SymbolB            string
	GeneIDA            string
	GeneIDB            string
	ExperimentalSystem string
	SystemType         string
	Author             string
	PubMedID           string
	TaxonA             string
	TaxonB             string
	Throughput         string
	Score              string
}

// Gene is one gene catalog entry.
type Gene struct {
	ID       string
	Symbol   string
	Synonyms []string
	TaxonID  string
	Organism string
}

func ParseInteraction(row gjson.Result) Interaction {
	return Interaction{
		ID:                 field(row, "BIOGRID_INTERACTION_ID"),
		SymbolA:            field(row, "OFFICIAL_SYMBOL_A"),
		SymbolB:            field(row, "OFFICIAL_SYMBOL_B"),
		GeneIDA:            field(row, "ENTREZ_GENE_A"),
		GeneIDB:            field(row, "ENTREZ_GENE_B"),
		ExperimentalSystem: field(row, "EXPERIMENTAL_SYSTEM"),
		SystemType:         field(row, "EXPERIMENTAL_SYSTEM_TYPE"),
		Author:             field(row, "AUTHOR"),
		PubMedID:           field(row, "PUBMED_ID"),
		TaxonA:             field(row, "ORGANISM_A"),
		TaxonB:             field(row, "ORGANISM_B"),
		Throughput:         field(row, "THROUGHPUT"),
		Score:              field(row, "QUANTITATION"),
	}
}

func ParseGene(row gjson.Result) Gene {
	return Gene{
		ID:       field(row, "BIOGRID_ID"),
		Symbol:   field(row, "OFFICIAL_SYMBOL"),
		Synonyms: SplitSynonyms(field(row, "SYNONYMS")),
		TaxonID:  field(row, "ORGANISM_ID"),
		Organism: field(row, "ORGANISM_NAME"),
	}
}

// SplitSynonyms splits a pipe-delimited synonym list, preserving order. The
// result is never nil.
func SplitSynonyms(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == nullMarker {
		return []string{}
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func field(row gjson.Result, key string) string {
	v := row.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return v.String()
}
